package harness

import (
	"fmt"
	"strings"

	"github.com/temporalis/chrono"
	"github.com/temporalis/chrono/scalar"
	"github.com/temporalis/chrono/utc"
)

// mjdRenderPrec bounds day-number output so golden files stay stable at
// the digits the reference documentation quotes.
const mjdRenderPrec = 9

// Scales returns the registry the runner resolves scale names against.
func Scales() map[string]chrono.Timescale {
	return map[string]chrono.Timescale{
		"TAI": chrono.TAI,
		"GPS": chrono.GPS,
		"TT":  chrono.TT,
		"UTC": utc.Default(),
	}
}

// Run executes every step of a scenario and returns one rendered line per
// step. Timestamps render as "days/seconds" so positions inside an
// inserted leap second stay distinguishable from the following midnight.
func Run(s *Scenario) ([]string, error) {
	scales := Scales()
	lines := make([]string, 0, len(s.Steps))
	for n, step := range s.Steps {
		line, err := runStep(scales, step)
		if err != nil {
			return nil, fmt.Errorf("scenario %s step %d: %w", s.Name, n+1, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// RunRendered is Run joined into the newline-terminated form golden files
// store.
func RunRendered(s *Scenario) ([]byte, error) {
	lines, err := Run(s)
	if err != nil {
		return nil, err
	}
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

func runStep(scales map[string]chrono.Timescale, step Step) (string, error) {
	scale, ok := scales[step.Scale]
	if !ok {
		return "", fmt.Errorf("unknown scale %q", step.Scale)
	}
	secs, err := parseScalar(step.Secs)
	if err != nil {
		return "", err
	}
	in := chrono.NewInstant(scale, chrono.RawTimestamp(step.Days, secs))
	input := fmt.Sprintf("%s %d/%s", step.Scale, step.Days, secs)

	switch step.Op {
	case "convert":
		target, ok := scales[step.To]
		if !ok {
			return "", fmt.Errorf("unknown target scale %q", step.To)
		}
		out := in.In(target)
		return fmt.Sprintf("convert %s -> %s: %s", input, step.To, renderTimestamp(out.Timestamp())), nil

	case "round":
		out := in.RoundTo(step.Prec)
		return fmt.Sprintf("round %s prec=%d: %s", input, step.Prec, renderTimestamp(out.Timestamp())), nil

	case "add", "sub":
		span, err := parseScalar(step.Span)
		if err != nil {
			return "", err
		}
		d := chrono.DurationOf(span)
		out := in.Add(d)
		if step.Op == "sub" {
			out = in.Sub(d)
		}
		return fmt.Sprintf("%s %s span=%s: %s", step.Op, input, span, renderTimestamp(out.Timestamp())), nil

	case "mjd", "jd":
		dayScale := scale
		name := step.Scale
		if step.To != "" {
			dayScale, ok = scales[step.To]
			if !ok {
				return "", fmt.Errorf("unknown day-numbering scale %q", step.To)
			}
			name = step.To
		}
		tz, err := parseScalar(step.TZDelta)
		if err != nil {
			return "", err
		}
		v := chrono.MJDShifted(in, dayScale, tz)
		if step.Op == "jd" {
			v = v.Add(chrono.JDEpochDelta)
		}
		return fmt.Sprintf("%s %s in %s: %s", step.Op, input, name, v.Round(mjdRenderPrec)), nil

	case "gps-weeks":
		weeks, rem := chrono.GPSWeeks(in)
		return fmt.Sprintf("gps-weeks %s: week=%d secs=%s", input, weeks, rem), nil

	default:
		return "", fmt.Errorf("unknown op %q", step.Op)
	}
}

func parseScalar(raw string) (scalar.Scalar, error) {
	if raw == "" {
		return scalar.Scalar{}, nil
	}
	return scalar.FromString(raw)
}

func renderTimestamp(t chrono.Timestamp) string {
	return fmt.Sprintf("%d/%s", t.Days(), t.Seconds())
}
