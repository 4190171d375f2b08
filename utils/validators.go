// File: /utils/validators.go
package utils

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

func IsValidStageNumber(stage int) bool {
	return stage >= 1
}

func IsValidElapsedSeconds(seconds int) bool {
	return seconds >= 0
}

func IsValidOverlapRatio(ratio float64) bool {
	return ratio >= 0 && ratio <= 1
}
