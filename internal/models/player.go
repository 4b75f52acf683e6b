package models

// Sex is the player's current sex. Some items and curses depend on it.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Player is the mutable state of one seat at the table.
type Player struct {
	TurnNumber    int           `yaml:"turn_number"`
	Level         int           `yaml:"level"`
	Sex           Sex           `yaml:"sex"`
	Gold          int           `yaml:"gold"`
	CombatBonus   int           `yaml:"combat_bonus"`
	RunAwayBonus  int           `yaml:"run_away_bonus"`
	ChickenOnHead bool          `yaml:"chicken_on_head"` // -1 to every die roll
	Hand          *Hand         `yaml:"hand"`
	Equipped      *EquippedArea `yaml:"equipped"`
}

func NewPlayer(turnNumber int, sex Sex) *Player {
	return &Player{
		TurnNumber: turnNumber,
		Level:      1,
		Sex:        sex,
		Hand:       NewHand(),
		Equipped:   NewEquippedArea(),
	}
}

// ModifyLevel adds delta without clamping.
func (p *Player) ModifyLevel(delta int) {
	p.Level += delta
}

func (p *Player) SetLevel(level int) {
	p.Level = level
}

// ToggleSex flips between male and female and returns the new value.
func (p *Player) ToggleSex() Sex {
	if p.Sex == Male {
		p.Sex = Female
	} else {
		p.Sex = Male
	}
	return p.Sex
}

// AddGold adds amount, which may be negative. No floor is applied.
func (p *Player) AddGold(amount int) {
	p.Gold += amount
}

func (p *Player) ModifyCombatBonus(delta int) {
	p.CombatBonus += delta
}

func (p *Player) ModifyRunAwayBonus(delta int) {
	p.RunAwayBonus += delta
}
