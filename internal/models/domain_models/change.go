package domain_models

type Action string

const (
	ActionInsert Action = "insert"
	ActionDelete Action = "delete"
	ActionChange Action = "change"
)

type Field string

const (
	FieldBody   Field = "body"
	FieldTitle  Field = "title"
	FieldRating Field = "rating"
)

// Change describes one edit applied while serving a snapshot.
// Skipped is set when the action had nothing to act on.
type Change struct {
	Action   Action
	ReviewID int64
	Field    Field
	Position int
	Skipped  bool
}
