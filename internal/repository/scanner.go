package repository

import "fmt"

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// ScanDayRecord scans a single day record; columns follow dayRecordColumns
func ScanDayRecord(scanner Scanner) (*DayRecord, error) {
	rec := &DayRecord{}
	var createdAt, updatedAt string

	err := scanner.Scan(
		&rec.Day,
		&rec.Year,
		&rec.Month,
		&rec.DocumentID,
		&rec.Punches[0],
		&rec.Punches[1],
		&rec.Punches[2],
		&rec.Punches[3],
		&rec.Punches[4],
		&rec.Punches[5],
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rec.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, fmt.Errorf("day %s created_at: %w", rec.Day, err)
	}
	if rec.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, fmt.Errorf("day %s updated_at: %w", rec.Day, err)
	}
	return rec, nil
}

// ScanDayRecords scans multiple day records from database rows
func ScanDayRecords(rows Rows) ([]*DayRecord, error) {
	var records []*DayRecord
	for rows.Next() {
		rec, err := ScanDayRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanPeriodBalance scans a single period balance
func ScanPeriodBalance(scanner Scanner) (*PeriodBalance, error) {
	bal := &PeriodBalance{}
	var updatedAt string
	if err := scanner.Scan(&bal.Year, &bal.Month, &bal.Minutes, &updatedAt); err != nil {
		return nil, err
	}
	t, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("period %d/%d updated_at: %w", bal.Year, bal.Month, err)
	}
	bal.UpdatedAt = t
	return bal, nil
}

// ScanPeriodBalances scans multiple period balances from database rows
func ScanPeriodBalances(rows Rows) ([]*PeriodBalance, error) {
	var balances []*PeriodBalance
	for rows.Next() {
		bal, err := ScanPeriodBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, bal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return balances, nil
}
