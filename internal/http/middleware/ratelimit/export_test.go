package ratelimit

import "time"

func (m *Memory) SetClock(now func() time.Time) { m.now = now }

func (m *Memory) Size() int { return m.size() }
