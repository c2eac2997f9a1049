package academic

// WeightedAverage computes the coefficient-weighted mean of the given notes.
// An empty set or a zero total coefficient yields 0, never NaN.
func WeightedAverage(notes []Note) float64 {
	var sum, coefs float64
	for _, n := range notes {
		sum += n.Valeur * n.Coefficient
		coefs += n.Coefficient
	}
	if coefs == 0 {
		return 0
	}
	return sum / coefs
}

// AveragesByCours groups notes per course and averages each group.
func AveragesByCours(notes []Note) map[int]float64 {
	grouped := make(map[int][]Note)
	for _, n := range notes {
		grouped[n.CoursID] = append(grouped[n.CoursID], n)
	}
	avgs := make(map[int]float64, len(grouped))
	for id, group := range grouped {
		avgs[id] = WeightedAverage(group)
	}
	return avgs
}
