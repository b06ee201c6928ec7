package scoring

// Normalize rescales a column to [0,1] by min-max.
// 빈 입력 또는 스프레드 0이면 전부 0: 변별력 없는 시그널은 기여도 0
//
// 선형 스케일이라 아웃라이어가 나머지를 압축하지만, 합성 점수를
// 직관적인 유계값으로 두기 위한 의도된 선택 (z-score 아님)
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if max == min {
		return out
	}

	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}
