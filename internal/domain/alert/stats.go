package alert

// PartitionByStatus splits alerts into active, under review and resolved,
// preserving collection order within each list.
func PartitionByStatus(alerts []*Alert) *Partition {
	p := &Partition{
		Active:      []*Alert{},
		UnderReview: []*Alert{},
		Resolved:    []*Alert{},
	}
	for _, a := range alerts {
		switch a.Status {
		case StatusActive:
			p.Active = append(p.Active, a)
		case StatusUnderReview:
			p.UnderReview = append(p.UnderReview, a)
		case StatusResolved:
			p.Resolved = append(p.Resolved, a)
		}
	}
	return p
}

// CountBySeverityAndStatus counts alerts with both the given severity and status
func CountBySeverityAndStatus(alerts []*Alert, severity Severity, status Status) int {
	n := 0
	for _, a := range alerts {
		if a.Severity == severity && a.Status == status {
			n++
		}
	}
	return n
}

// Summarize computes aggregate counts over alerts
func Summarize(alerts []*Alert) *Summary {
	s := &Summary{
		Total:      len(alerts),
		ByStatus:   make(map[Status]int, len(Statuses)),
		BySeverity: make(map[Severity]int, len(Severities)),
	}
	for _, st := range Statuses {
		s.ByStatus[st] = 0
	}
	for _, sev := range Severities {
		s.BySeverity[sev] = 0
	}
	for _, a := range alerts {
		s.ByStatus[a.Status]++
		s.BySeverity[a.Severity]++
	}
	s.CriticalActive = CountBySeverityAndStatus(alerts, SeverityCritical, StatusActive)
	return s
}

// Counts flattens the summary into category names
func (s *Summary) Counts() map[string]int {
	counts := map[string]int{
		"total":           s.Total,
		"critical_active": s.CriticalActive,
	}
	for st, n := range s.ByStatus {
		counts["status:"+string(st)] = n
	}
	for sev, n := range s.BySeverity {
		counts["severity:"+string(sev)] = n
	}
	return counts
}
