package model

import "time"

// TimeSample is the wall-clock reading used for a single frame
type TimeSample struct {
	Hour12 int // 0..11
	Minute int // 0..59
	Second int // 0..59
}

// SampleTime extracts a TimeSample from t in t's location
func SampleTime(t time.Time) TimeSample {
	return TimeSample{
		Hour12: t.Hour() % 12,
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// HourValue returns the hour hand position on the 60-unit dial. Elapsed
// minutes advance the hand fractionally between hour marks.
func (s TimeSample) HourValue() float64 {
	return (float64(s.Hour12) + float64(s.Minute)/60) * 5
}

// MinuteValue returns the minute hand position on the 60-unit dial
func (s TimeSample) MinuteValue() float64 {
	return float64(s.Minute)
}

// SecondValue returns the second hand position on the 60-unit dial
func (s TimeSample) SecondValue() float64 {
	return float64(s.Second)
}
