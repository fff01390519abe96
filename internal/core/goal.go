package core

// Goal is a single daily objective. Progress accumulates over the day and
// is reset at the day boundary; it never exceeds Target, and Target is
// never below 1.
type Goal struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type,omitempty"`
	Target   int    `json:"target"`
	Progress int    `json:"progress"`
}

// Met reports whether this goal has reached its daily target.
func (g Goal) Met() bool {
	return g.Progress >= g.Target
}

// Goal type catalog. Types classify a goal for display; "custom" covers
// anything the user typed themselves.
const (
	TypeReadBook       = "read_book"
	TypeStudying       = "studying"
	TypeWatchFilm      = "watch_film"
	TypeHangoutFriends = "hangout_friends"
	TypeWorkOut        = "work_out"
	TypeYoga           = "yoga"
	TypeCustom         = "custom"
)

// GoalType describes one entry of the fixed goal-type catalog.
type GoalType struct {
	ID            string `json:"id"`
	Icon          string `json:"icon"`
	Unit          string `json:"unit"`
	DefaultTarget int    `json:"defaultTarget"`
}

// GoalTypes is the catalog offered during onboarding.
var GoalTypes = []GoalType{
	{ID: TypeReadBook, Icon: "📖", Unit: "min", DefaultTarget: 30},
	{ID: TypeStudying, Icon: "📚", Unit: "min", DefaultTarget: 30},
	{ID: TypeWatchFilm, Icon: "🎬", Unit: "min", DefaultTarget: 90},
	{ID: TypeHangoutFriends, Icon: "👥", Unit: "min", DefaultTarget: 60},
	{ID: TypeWorkOut, Icon: "💪", Unit: "min", DefaultTarget: 45},
	{ID: TypeYoga, Icon: "🧘", Unit: "min", DefaultTarget: 30},
}

// NormalizeType maps an unknown or empty type to "custom".
func NormalizeType(id string) string {
	for _, t := range GoalTypes {
		if t.ID == id {
			return id
		}
	}
	return TypeCustom
}
