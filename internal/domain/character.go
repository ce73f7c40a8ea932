package domain

type CharacterType string

const (
	CharacterAthleticWoman CharacterType = "athletic-woman"
	CharacterAthleticMen   CharacterType = "athletic-men"
	CharacterScholar       CharacterType = "scholar"
	CharacterTrainer       CharacterType = "trainer"
	CharacterStudent       CharacterType = "student"
	CharacterMentor        CharacterType = "mentor"
)

type Expression string

const (
	ExpressionHappy     Expression = "happy"
	ExpressionSleeping  Expression = "sleeping"
	ExpressionFocused   Expression = "focused"
	ExpressionExcited   Expression = "excited"
	ExpressionThinking  Expression = "thinking"
	ExpressionBreathing Expression = "breathing"
)

// Character is the cosmetic avatar assigned to a group.
type Character struct {
	Type       CharacterType `json:"type"`
	Expression Expression    `json:"expression"`
}

// Appearance holds the visual parameters the renderer needs for a
// character type. Kept as a lookup table rather than per-component
// branching.
type Appearance struct {
	Gradient string `json:"gradient"`
}

// ExpressionStyle holds the face and animation assigned to an expression.
type ExpressionStyle struct {
	Face      string `json:"face"`
	Animation string `json:"animation"`
}

var characterAppearances = map[CharacterType]Appearance{
	CharacterAthleticWoman: {Gradient: "from-pink-400 via-purple-400 to-indigo-400"},
	CharacterAthleticMen:   {Gradient: "from-blue-400 via-cyan-400 to-teal-400"},
	CharacterScholar:       {Gradient: "from-amber-400 via-orange-400 to-red-400"},
	CharacterTrainer:       {Gradient: "from-green-400 via-emerald-400 to-teal-400"},
	CharacterStudent:       {Gradient: "from-violet-400 via-purple-400 to-fuchsia-400"},
	CharacterMentor:        {Gradient: "from-slate-400 via-gray-400 to-zinc-400"},
}

var expressionStyles = map[Expression]ExpressionStyle{
	ExpressionSleeping:  {Face: "😴", Animation: "pulse"},
	ExpressionHappy:     {Face: "😊", Animation: "hover-scale"},
	ExpressionFocused:   {Face: "🧐", Animation: "hover-scale"},
	ExpressionExcited:   {Face: "🤩", Animation: "pulse"},
	ExpressionThinking:  {Face: "🤔", Animation: "hover-scale"},
	ExpressionBreathing: {Face: "😌", Animation: "pulse"},
}

var defaultAppearance = Appearance{Gradient: "from-blue-400 via-purple-400 to-pink-400"}

var defaultExpressionStyle = ExpressionStyle{Face: "😊", Animation: "hover-scale"}

// AppearanceFor returns the visual parameters for a character type,
// falling back to a neutral gradient for unknown values.
func AppearanceFor(t CharacterType) Appearance {
	if a, ok := characterAppearances[t]; ok {
		return a
	}

	return defaultAppearance
}

// StyleFor returns the face and animation for an expression, falling back
// to the happy style for unknown values.
func StyleFor(e Expression) ExpressionStyle {
	if s, ok := expressionStyles[e]; ok {
		return s
	}

	return defaultExpressionStyle
}

// EffectiveExpression resolves the expression shown right now: the sleeping
// flag overrides whatever expression the group carries.
func (c Character) EffectiveExpression(sleeping bool) Expression {
	if sleeping {
		return ExpressionSleeping
	}

	return c.Expression
}
