package domain

import (
	"math"
	"regexp"
	"strconv"
)

var (
	numberPattern = regexp.MustCompile(`[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`)
	toPattern     = regexp.MustCompile(`(?i)\bto\b`)
)

// Range is an inclusive numeric guideline range.
type Range struct {
	Low  float64
	High float64
}

// Mid returns the midpoint of the range rounded to two decimals.
func (r Range) Mid() float64 {
	return math.Round((r.Low+r.High)/2*100) / 100
}

// ParseRange extracts a normalized (low, high) range from a value that is
// either a string such as "5.5-6.5" or "5.5 to 6.5", or a sequence whose
// first two numeric entries form the range. The bounds are swapped when
// given in descending order. Returns false when fewer than two finite
// numbers can be extracted.
func ParseRange(value Value) (Range, bool) {
	var numbers []float64

	switch typed := value.(type) {
	case string:
		cleaned := toPattern.ReplaceAllString(typed, " ")
		for _, match := range numberPattern.FindAllString(cleaned, -1) {
			num, err := strconv.ParseFloat(match, 64)
			if err != nil {
				continue
			}
			numbers = append(numbers, num)
			if len(numbers) == 2 {
				break
			}
		}
	case []any:
		for _, item := range typed {
			num, ok := Float(item)
			if !ok {
				continue
			}
			numbers = append(numbers, num)
			if len(numbers) == 2 {
				break
			}
		}
	default:
		return Range{}, false
	}

	if len(numbers) < 2 {
		return Range{}, false
	}
	low, high := numbers[0], numbers[1]
	if !math.IsInf(low, 0) && !math.IsNaN(low) && !math.IsInf(high, 0) && !math.IsNaN(high) {
		if low > high {
			low, high = high, low
		}
		return Range{Low: low, High: high}, true
	}
	return Range{}, false
}

// Float coerces a dataset scalar to float64. JSON numbers decode as
// float64, YAML may produce int or string.
func Float(v Value) (float64, bool) {
	switch typed := v.(type) {
	case float64:
		return typed, true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		num, err := strconv.ParseFloat(typed, 64)
		if err != nil {
			return 0, false
		}
		return num, true
	default:
		return 0, false
	}
}

// CleanFloatMap keeps the entries of data that coerce to finite positive
// floats, dropping everything else.
func CleanFloatMap(data map[string]any) map[string]float64 {
	result := make(map[string]float64, len(data))
	for key, value := range data {
		num, ok := Float(value)
		if !ok || math.IsNaN(num) || math.IsInf(num, 0) || num <= 0 {
			continue
		}
		result[key] = num
	}
	return result
}
