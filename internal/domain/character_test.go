package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppearanceFor(t *testing.T) {
	t.Run("known types get their own gradient", func(t *testing.T) {
		assert.Equal(t, "from-pink-400 via-purple-400 to-indigo-400", AppearanceFor(CharacterAthleticWoman).Gradient)
		assert.Equal(t, "from-slate-400 via-gray-400 to-zinc-400", AppearanceFor(CharacterMentor).Gradient)
	})

	t.Run("unknown types fall back to the neutral gradient", func(t *testing.T) {
		assert.Equal(t, defaultAppearance, AppearanceFor("wizard"))
	})
}

func TestStyleFor(t *testing.T) {
	t.Run("known expressions get their face and animation", func(t *testing.T) {
		assert.Equal(t, ExpressionStyle{Face: "😴", Animation: "pulse"}, StyleFor(ExpressionSleeping))
		assert.Equal(t, ExpressionStyle{Face: "🤔", Animation: "hover-scale"}, StyleFor(ExpressionThinking))
	})

	t.Run("unknown expressions fall back to the happy style", func(t *testing.T) {
		assert.Equal(t, defaultExpressionStyle, StyleFor("grumpy"))
	})
}

func TestEffectiveExpression(t *testing.T) {
	c := Character{Type: CharacterScholar, Expression: ExpressionFocused}

	assert.Equal(t, ExpressionFocused, c.EffectiveExpression(false))
	assert.Equal(t, ExpressionSleeping, c.EffectiveExpression(true), "night mode overrides the configured expression")
}
