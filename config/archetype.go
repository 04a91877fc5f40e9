package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidArchetype = errors.New("invalid character archetype")

// ParseCharacter decodes a YAML archetype document and validates it.
func ParseCharacter(data []byte) (CharacterConfig, error) {
	var c CharacterConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return CharacterConfig{}, fmt.Errorf("decode archetype: %w", err)
	}
	if err := c.Validate(); err != nil {
		return CharacterConfig{}, err
	}
	return c, nil
}

func (c CharacterConfig) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidArchetype)
	case c.Sheet == "":
		return fmt.Errorf("%w: %s: missing sheet", ErrInvalidArchetype, c.Name)
	case c.RunSpeed < 0 || c.DashSpeed < 0:
		return fmt.Errorf("%w: %s: negative speed", ErrInvalidArchetype, c.Name)
	case c.JumpVelocity <= 0 || c.JumpAscent <= 0:
		return fmt.Errorf("%w: %s: jump needs a positive velocity and ascent", ErrInvalidArchetype, c.Name)
	case c.Gravity <= 0 || c.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: %s: gravity and max fall speed must be positive", ErrInvalidArchetype, c.Name)
	case c.GravityDecay < 0 || c.GravityDecay >= 1:
		return fmt.Errorf("%w: %s: gravity decay must be in [0, 1)", ErrInvalidArchetype, c.Name)
	case c.BodyWidth <= 0 || c.BodyHeight <= 0:
		return fmt.Errorf("%w: %s: body size must be positive", ErrInvalidArchetype, c.Name)
	}
	return nil
}
