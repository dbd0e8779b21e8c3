package series

import (
	"math"
	"sort"
	"time"

	"github.com/sujanraya2001-dotcom/Env-Dashboard/pkg/models"
)

// Point is one (time, value) sample of a signal series.
type Point struct {
	TimeMs int64
	Value  float64
}

// epoch second values are below this; epoch millis are above
const epochMillisCutover = int64(1e12)

// EpochMillis converts the timestamp representations seen on device
// uploads (time.Time, epoch seconds, epoch millis, RFC3339 strings)
// to epoch milliseconds. Returns false for anything unparseable.
func EpochMillis(v any) (int64, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return 0, false
		}
		return t.UnixMilli(), true
	case int64:
		return normalizeEpoch(t)
	case int:
		return normalizeEpoch(int64(t))
	case float64:
		return normalizeEpoch(int64(t))
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UnixMilli(), true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

func normalizeEpoch(n int64) (int64, bool) {
	if n <= 0 {
		return 0, false
	}
	if n < epochMillisCutover {
		return n * 1000, true
	}
	return n, true
}

// FromReadings builds the chronological series for one signal. Rows
// without a value for the signal or without a resolvable timestamp are
// dropped silently.
func FromReadings(rows []models.Reading, sig models.Signal) []Point {
	points := make([]Point, 0, len(rows))
	for i := range rows {
		value := rows[i].Value(sig)
		if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
			continue
		}
		timeMs, ok := EpochMillis(rows[i].Timestamp)
		if !ok {
			continue
		}
		points = append(points, Point{TimeMs: timeMs, Value: *value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].TimeMs < points[j].TimeMs })
	return points
}

// StepDelta is the value change between the last two samples.
func StepDelta(points []Point) (float64, bool) {
	if len(points) < 2 {
		return 0, false
	}
	return points[len(points)-1].Value - points[len(points)-2].Value, true
}

// WindowDelta is the value change between the earliest and latest
// sample inside the trailing window [nowMs-windowMs, nowMs]. Needs at
// least two samples inside the window.
func WindowDelta(points []Point, nowMs, windowMs int64) (float64, bool) {
	cutoff := nowMs - windowMs
	first := -1
	last := -1
	for i := range points {
		if points[i].TimeMs < cutoff || points[i].TimeMs > nowMs {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	if first == -1 || first == last {
		return 0, false
	}
	return points[last].Value - points[first].Value, true
}

// MeanStdDev returns the mean and population standard deviation.
func MeanStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}

// ZScore scores the latest sample against the mean/stddev of the
// preceding window-1 samples. Returns false when there are fewer than
// window samples or the window has no dispersion.
func ZScore(points []Point, window int) (float64, bool) {
	if window < 3 || len(points) < window {
		return 0, false
	}
	tail := points[len(points)-window:]
	prior := make([]float64, 0, window-1)
	for i := 0; i < len(tail)-1; i++ {
		prior = append(prior, tail[i].Value)
	}
	mean, std := MeanStdDev(prior)
	if std == 0 {
		return 0, false
	}
	return (tail[len(tail)-1].Value - mean) / std, true
}
