package service

// calculateBMI expects height in centimeters and weight in kilograms.
// It returns false for values no human body could have, in which case the
// profile is served without a BMI rather than failing the request.
func calculateBMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, false
	}
	h := heightCm / 100.0
	return weightKg / (h * h), true
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
