package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/actor"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	GameFile   = "game.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	return DecodeSpec[T](filename, data)
}

// LoadSpecFile reads a spec from an explicit path, bypassing Dir and the
// embedded defaults.
func LoadSpecFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	return DecodeSpec[T](path, data)
}

func DecodeSpec[T any](name string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	MoveSpeed float64       `yaml:"move_speed"`
	JumpSpeed float64       `yaml:"jump_speed"`
	Gravity   float64       `yaml:"gravity"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Keys      KeysSpec      `yaml:"keys"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

func (s *PlayerSpec) Validate() error {
	if !(s.Collider.Width > 0) || !(s.Collider.Height > 0) {
		return fmt.Errorf("collider must be positive, got %vx%v", s.Collider.Width, s.Collider.Height)
	}
	for name, v := range map[string]float64{
		"move_speed": s.MoveSpeed,
		"jump_speed": s.JumpSpeed,
		"gravity":    s.Gravity,
		"spawn x":    s.Transform.X,
		"spawn y":    s.Transform.Y,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite", name)
		}
	}
	if s.Keys.empty() {
		return errors.New("keys: no bindings")
	}
	return nil
}

func (s *PlayerSpec) Tuning() actor.Tuning {
	return actor.Tuning{
		Gravity:   s.Gravity,
		MoveSpeed: s.MoveSpeed,
		JumpSpeed: s.JumpSpeed,
	}
}

func (s *PlayerSpec) Box() collision.Box {
	return collision.Box{W: s.Collider.Width, H: s.Collider.Height}
}

func (s *PlayerSpec) Spawn() cp.Vector {
	return cp.Vector{X: s.Transform.X, Y: s.Transform.Y}
}

type GameSpec struct {
	Title           string     `yaml:"title"`
	Screen          ScreenSpec `yaml:"screen"`
	TPS             int        `yaml:"tps"`
	ClearColor      *YAMLColor `yaml:"clear_color"`
	CollisionLayers []string   `yaml:"collision_layers"`
	Camera          CameraSpec `yaml:"camera"`
}

// LoadGameSpec loads game settings from path, or from GameFile when path
// is empty.
func LoadGameSpec(path string) (*GameSpec, error) {
	var (
		spec     GameSpec
		err      error
		filename = path
	)
	if path == "" {
		filename = GameFile
		spec, err = LoadSpec[GameSpec](GameFile)
	} else {
		spec, err = LoadSpecFile[GameSpec](path)
	}
	if err != nil {
		return nil, err
	}
	if spec.Screen.Width <= 0 || spec.Screen.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: invalid screen size %dx%d", filename, spec.Screen.Width, spec.Screen.Height)
	}
	if spec.TPS <= 0 {
		spec.TPS = 60
	}
	if spec.Camera.Zoom <= 0 {
		spec.Camera.Zoom = 1
	}
	return &spec, nil
}

type ScreenSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteSpec struct {
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	OffsetX float64    `yaml:"offset_x"`
	OffsetY float64    `yaml:"offset_y"`
	Color   *YAMLColor `yaml:"color"`
}

// KeysSpec maps each action to ebiten key names ("ArrowLeft", "Space").
type KeysSpec struct {
	MoveLeft  []string `yaml:"move_left"`
	MoveRight []string `yaml:"move_right"`
	Jump      []string `yaml:"jump"`
}

func (k KeysSpec) empty() bool {
	return len(k.MoveLeft) == 0 && len(k.MoveRight) == 0 && len(k.Jump) == 0
}

// Bindings returns the key names bound to each action.
func (k KeysSpec) Bindings() map[actor.Action][]string {
	return map[actor.Action][]string{
		actor.MoveLeft:  k.MoveLeft,
		actor.MoveRight: k.MoveRight,
		actor.Jump:      k.Jump,
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	col, err := common.ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

// Or returns the decoded color, or fallback when the field was absent.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
