package core

import "regexp"

var (
	rankPattern   = regexp.MustCompile(`^[ROYGBIVU]$`)
	sectorPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// DefaultSector is assigned when the provided sector code is not three
// uppercase letters.
const DefaultSector = "NLL"

// Character is the profile a player may bring into a room. Fields are
// normalized on construction; invalid input falls back to defaults rather
// than erroring.
type Character struct {
	Name          string
	Rank          string // one of R O Y G B I V U; empty means INFRARED
	Sector        string
	CloneNumber   int
	MutantPower   string
	SecretSociety string
}

// CharacterInput is the untrusted shape a character arrives as.
type CharacterInput struct {
	Name          string
	Rank          string
	Sector        string
	CloneNumber   int
	MutantPower   string
	SecretSociety string
}

// NewCharacter normalizes untrusted input into a Character.
func NewCharacter(in CharacterInput) *Character {
	c := &Character{
		Name:          in.Name,
		Sector:        DefaultSector,
		MutantPower:   in.MutantPower,
		SecretSociety: in.SecretSociety,
	}
	if rankPattern.MatchString(in.Rank) {
		c.Rank = in.Rank
	}
	if sectorPattern.MatchString(in.Sector) {
		c.Sector = in.Sector
	}
	if in.CloneNumber > 0 {
		c.CloneNumber = in.CloneNumber
	}
	return c
}

// CharacterView is the wire projection of a Character. A missing rank means
// INFRARED.
type CharacterView struct {
	Name          string `json:"name"`
	Rank          string `json:"rank,omitempty"`
	Sector        string `json:"sector"`
	CloneNumber   int    `json:"cloneNumber"`
	MutantPower   string `json:"mutantPower"`
	SecretSociety string `json:"secretSociety"`
}

// View returns the serializable projection of the character.
func (c *Character) View() CharacterView {
	return CharacterView{
		Name:          c.Name,
		Rank:          c.Rank,
		Sector:        c.Sector,
		CloneNumber:   c.CloneNumber,
		MutantPower:   c.MutantPower,
		SecretSociety: c.SecretSociety,
	}
}
