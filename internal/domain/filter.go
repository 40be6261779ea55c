package domain

// AllStores is the sentinel store filter value that disables the store match.
const AllStores = "todas"

// RecordFilter selects records from the store. All fields are optional and
// conjunctive: empty string disables that criterion. Date bounds are
// inclusive and compared lexicographically on the ISO form. Search matches a
// case- and diacritic-insensitive substring of the order or invoice number.
type RecordFilter struct {
	DateFrom string
	DateTo   string
	Store    string
	Search   string
}
