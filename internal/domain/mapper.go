package domain

import (
	"workhours/internal/repository"
)

// DayRecordMapper handles conversion between domain and storage day records.
type DayRecordMapper struct{}

// NewDayRecordMapper creates a new DayRecordMapper instance.
func NewDayRecordMapper() *DayRecordMapper {
	return &DayRecordMapper{}
}

// ToRepository converts a domain DayRecord to its stored form.
func (m *DayRecordMapper) ToRepository(rec DayRecord) repository.DayRecord {
	period := rec.Period()
	return repository.DayRecord{
		Day:        rec.ID(),
		Year:       period.Year,
		Month:      period.Month,
		DocumentID: rec.DocumentID,
		Punches:    rec.Tokens,
		UpdatedAt:  rec.UpdatedAt,
	}
}

// FromRepository converts a stored day record back to the domain.
func (m *DayRecordMapper) FromRepository(rec repository.DayRecord) (DayRecord, error) {
	day, err := ParseDayID(rec.Day)
	if err != nil {
		return DayRecord{}, err
	}
	return DayRecord{
		Day:        day,
		DocumentID: rec.DocumentID,
		Tokens:     rec.Punches,
		UpdatedAt:  rec.UpdatedAt,
	}, nil
}

// FromRepositorySlice converts stored day records, stopping at the first unreadable day.
func (m *DayRecordMapper) FromRepositorySlice(recs []*repository.DayRecord) ([]DayRecord, error) {
	out := make([]DayRecord, 0, len(recs))
	for _, rec := range recs {
		d, err := m.FromRepository(*rec)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// PeriodBalanceMapper handles conversion between domain and storage balances.
type PeriodBalanceMapper struct{}

// NewPeriodBalanceMapper creates a new PeriodBalanceMapper instance.
func NewPeriodBalanceMapper() *PeriodBalanceMapper {
	return &PeriodBalanceMapper{}
}

// ToRepository converts a domain PeriodBalance to its stored form.
func (m *PeriodBalanceMapper) ToRepository(bal PeriodBalance) repository.PeriodBalance {
	return repository.PeriodBalance{
		Year:    bal.Period.Year,
		Month:   bal.Period.Month,
		Minutes: bal.Minutes,
	}
}

// FromRepository converts a stored balance to the domain.
func (m *PeriodBalanceMapper) FromRepository(bal repository.PeriodBalance) PeriodBalance {
	return PeriodBalance{
		Period:  PeriodKey{Year: bal.Year, Month: bal.Month},
		Minutes: bal.Minutes,
	}
}

// FromRepositorySlice converts a slice of stored balances.
func (m *PeriodBalanceMapper) FromRepositorySlice(bals []*repository.PeriodBalance) []PeriodBalance {
	out := make([]PeriodBalance, len(bals))
	for i, bal := range bals {
		out[i] = m.FromRepository(*bal)
	}
	return out
}
