package state

type Progress struct {
	Total   int
	Done    int
	Percent int
}

// ComputeProgress counts tasks and the share marked done. Percent is rounded
// half up and is 0 for an empty list.
func ComputeProgress(tasks []Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			p.Done++
		}
	}
	p.Percent = Percent(p.Done, p.Total)
	return p
}

func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*done + total) / (2 * total)
}
