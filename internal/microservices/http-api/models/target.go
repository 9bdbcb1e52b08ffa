package models

// TargetType names the kind of catalog item an engagement row points at.
type TargetType string

const (
	TargetMovie TargetType = "movie"
	TargetFood  TargetType = "food"
)

func (t TargetType) Valid() bool {
	return t == TargetMovie || t == TargetFood
}

// Target identifies one movie or one food.
type Target struct {
	Type TargetType
	ID   string
}

func MovieTarget(id string) Target { return Target{Type: TargetMovie, ID: id} }
func FoodTarget(id string) Target  { return Target{Type: TargetFood, ID: id} }

// Column is the engagement-table column holding the target id.
func (t Target) Column() string {
	if t.Type == TargetFood {
		return "food_id"
	}
	return "movie_id"
}

// Less orders targets so that row locks are always taken in the same sequence.
func (t Target) Less(o Target) bool {
	if t.Type != o.Type {
		return t.Type < o.Type
	}
	return t.ID < o.ID
}

// refs returns the movieId/foodId pair for a target, exactly one of them set.
func (t Target) refs() (movieID, foodID *string) {
	id := t.ID
	if t.Type == TargetFood {
		return nil, &id
	}
	return &id, nil
}

func targetOf(typ TargetType, movieID, foodID *string) Target {
	if typ == TargetFood && foodID != nil {
		return FoodTarget(*foodID)
	}
	if movieID != nil {
		return MovieTarget(*movieID)
	}
	return Target{Type: typ}
}
