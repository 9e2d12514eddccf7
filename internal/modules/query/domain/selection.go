package domain

import "time"

// Selection is the set of filters a user has picked for a single search.
// It is rebuilt on every form change and never persisted.
type Selection struct {
	Channel     string
	User        string
	FileType    FileType
	Keywords    string
	ExactPhrase bool
	DateMode    DateMode
	DateFormat  DateFormat
	SingleDate  time.Time
	AfterDate   time.Time
	BeforeDate  time.Time
}

// RawSelection carries form input before it is parsed into a Selection.
type RawSelection struct {
	Channel     string
	User        string
	FileType    string
	Keywords    string
	ExactPhrase bool
	DateMode    string
	DateFormat  string
	Date        string
	After       string
	Before      string
}
