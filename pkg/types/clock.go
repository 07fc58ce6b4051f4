package types

import "time"

// SystemClock возвращает текущую дату в заданной таймзоне (UTC, если не задана)
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() Date {
	now := time.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return NewDate(now.Year(), now.Month(), now.Day())
}
