// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string and perform no I/O.

package cli

import (
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/agbru/ultranum/internal/format"
	"github.com/agbru/ultranum/internal/metrics"
	"github.com/agbru/ultranum/internal/orchestration"
	"github.com/agbru/ultranum/internal/sysmon"
	"github.com/agbru/ultranum/internal/ui"
)

// TruncationLimit is the number of words above which the word listing is
// shortened to its first and last DisplayEdges words.
const (
	TruncationLimit = 16
	DisplayEdges    = 4
)

// FormatWords renders v as its little-endian list of words of width bits,
// most significant last, e.g. "[0x3f 0x00]".
func FormatWords(v *big.Int, width, words int) string {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	digits := width / 4
	x := new(big.Int).Set(v)
	parts := make([]string, words)
	w := new(big.Int)
	for i := range words {
		w.And(x, mask)
		parts[i] = fmt.Sprintf("%#0*x", digits+2, w)
		x.Rsh(x, uint(width))
	}
	if words > TruncationLimit {
		parts = append(append(parts[:DisplayEdges:DisplayEdges], "..."), parts[words-DisplayEdges:]...)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatSigned reads v as a two's complement integer of bits bits.
func FormatSigned(v *big.Int, bits int) string {
	if v.BitLen() < bits {
		return v.String()
	}
	return new(big.Int).Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(bits))).String()
}

// FormatQuietResult is the single-line form used in quiet mode: the value,
// the quotient and remainder for div, or -1, 0 or 1 for cmp.
func FormatQuietResult(out orchestration.Outcome, req orchestration.Request) string {
	switch {
	case req.Op == orchestration.OpCmp:
		return fmt.Sprint(out.Cmp)
	case out.Remainder != nil:
		return fmt.Sprintf("%v %v", out.Value, out.Remainder)
	default:
		return out.Value.String()
	}
}

// DisplayQuietResult writes FormatQuietResult and a newline.
func DisplayQuietResult(out io.Writer, result orchestration.Outcome, req orchestration.Request) {
	fmt.Fprintln(out, FormatQuietResult(result, req))
}

var cmpSymbol = map[int]string{-1: "<", 0: "=", 1: ">"}

// DisplayResult writes the outcome of req in decimal, hexadecimal, signed
// and word form.
func DisplayResult(result orchestration.EvaluationResult, req orchestration.Request, out io.Writer) {
	const keyWidth = 12
	bits := req.WindowBits()
	a, b := req.Reduced()
	lines := []string{
		ui.KeyValue("Operation", req.Op, keyWidth),
		ui.KeyValue("Window", fmt.Sprintf("%d × %d-bit words (%d bits)", req.Words, req.Width, bits), keyWidth),
		ui.KeyValue("Backend", result.Name, keyWidth),
		ui.KeyValue("Time", format.FormatExecutionDuration(result.Duration), keyWidth),
	}
	fmt.Fprintln(out, ui.Header("Result"))

	if req.Op == orchestration.OpCmp {
		lines = append(lines, ui.KeyValue("Compare", fmt.Sprintf("%s %s %s",
			format.FormatBigInt(a), cmpSymbol[result.Outcome.Cmp], format.FormatBigInt(b)), keyWidth))
		fmt.Fprintln(out, ui.Box(lines...))
		return
	}

	v := result.Outcome.Value
	lines = append(lines,
		ui.KeyValue("Decimal", format.FormatBigInt(v), keyWidth),
		ui.KeyValue("Signed", FormatSigned(v, bits), keyWidth),
		ui.KeyValue("Hex", fmt.Sprintf("%#x", v), keyWidth),
		ui.KeyValue("Words", FormatWords(v, req.Width, req.Words), keyWidth),
	)
	if r := result.Outcome.Remainder; r != nil {
		lines = append(lines,
			ui.KeyValue("Remainder", format.FormatBigInt(r), keyWidth),
			ui.KeyValue("Rem. words", FormatWords(r, req.Width, req.Words), keyWidth),
		)
	}
	fmt.Fprintln(out, ui.Box(lines...))
}

// DisplayBenchReport writes per-operation timings and the mismatch count of
// a benchmark run.
func DisplayBenchReport(report orchestration.BenchReport, out io.Writer) {
	fmt.Fprintln(out, ui.Header(fmt.Sprintf("Benchmark: %s vs %s", report.Backend, report.Oracle)))
	ops := make([]string, 0, len(report.PerOp))
	for op := range report.PerOp {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	fmt.Fprintf(out, "%s%-6s %10s %12s%s\n", ui.ColorUnderline(), "Op", "Count", "Mean", ui.ColorReset())
	for _, op := range ops {
		s := report.PerOp[op]
		fmt.Fprintf(out, "%s%-6s%s %10s %s%12s%s\n",
			ui.ColorBlue(), op, ui.ColorReset(),
			format.FormatCount(int64(s.Count)),
			ui.ColorYellow(), format.FormatExecutionDuration(s.Mean()), ui.ColorReset())
	}
	fmt.Fprintf(out, "\n%s iterations in %s.\n",
		format.FormatCount(int64(report.Iterations)), format.FormatExecutionDuration(report.Duration))

	if report.Mismatches == 0 {
		fmt.Fprintf(out, "%sNo mismatches.%s\n", ui.ColorGreen(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s%s mismatches.%s\n", ui.ColorRed(), format.FormatCount(int64(report.Mismatches)), ui.ColorReset())
	if m := report.FirstMismatch; m != nil {
		fmt.Fprintf(out, "First: %v\n  got  %s\n  want %s\n",
			m.Request, FormatQuietResult(m.Got, m.Request), FormatQuietResult(m.Want, m.Request))
	}
}

// DisplayMemoryStats writes the allocation delta of a run.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(delta.TotalAlloc))
	fmt.Fprintf(out, "  Allocations:     %s\n", format.FormatCount(int64(delta.Mallocs)))
	fmt.Fprintf(out, "  GC cycles:       %d (%s paused)\n", delta.NumGC,
		format.FormatExecutionDuration(time.Duration(delta.PauseTotalNs)))
}

// DisplaySystemLoad writes the host load seen during a run. Nothing is
// written when no sample was taken.
func DisplaySystemLoad(s sysmon.Summary, out io.Writer) {
	if s.Samples == 0 {
		return
	}
	fmt.Fprintf(out, "\nHost load (%d samples): CPU mean %.1f%%, peak %.1f%%; memory peak %.1f%%\n",
		s.Samples, s.MeanCPU, s.PeakCPU, s.PeakMem)
}
