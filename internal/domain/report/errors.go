package report

import "errors"

var (
	ErrReportEncoding = errors.New("failed to encode report")
)
