package jsonresume

import "time"

const (
	isoDate   = time.DateOnly
	monthYear = "Jan 2006"
	enDash    = " – "
)

// FormatDateRange renders a start/end pair as "Mon YYYY – Mon YYYY".
// A missing end reads "Present" and a missing start reads "Until ...".
// Values that are not ISO dates are shown as written.
func FormatDateRange(start, end string) string {
	s, e := monthOf(start), monthOf(end)
	switch {
	case s != "" && e != "":
		return s + enDash + e
	case s != "":
		return s + enDash + "Present"
	case e != "":
		return "Until " + e
	}
	return ""
}

func monthOf(v string) string {
	v = clean(v)
	if v == "" {
		return ""
	}
	t, err := time.Parse(isoDate, v)
	if err != nil {
		return v
	}
	return t.Format(monthYear)
}
