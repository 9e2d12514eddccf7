//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// FileType is the attachment kind a search is narrowed to
// ENUM(pdf,image,snippet,google_docs,spreadsheet)
type FileType string

// DateMode selects how the date filter is applied
// ENUM(none,during,range)
type DateMode string

// DateFormat controls the granularity of rendered dates
// ENUM(full_date,month,year,date_time)
type DateFormat string
