package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ShooterSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Sockets   []SocketSpec  `yaml:"sockets"`

	MoveSpeed  float64 `yaml:"move_speed"`
	JumpSpeed  float64 `yaml:"jump_speed"`
	Gravity    float64 `yaml:"gravity"`
	AirControl float64 `yaml:"air_control"`

	Look    LookSpec    `yaml:"look"`
	Camera  CameraSpec  `yaml:"camera"`
	Aim     AimSpec     `yaml:"aim"`
	Fire    FireSpec    `yaml:"fire"`
	Spread  *SpreadSpec `yaml:"spread"`
	Effects EffectsSpec `yaml:"effects"`

	WeaponSocket  string  `yaml:"weapon_socket"`
	MuzzleSocket  string  `yaml:"muzzle_socket"`
	SensorRadius  float64 `yaml:"sensor_radius"`
	DefaultWeapon string  `yaml:"default_weapon"`
}

func LoadShooterSpec(name string) (*ShooterSpec, error) {
	spec, err := LoadSpec[ShooterSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type LookSpec struct {
	BaseTurnRate    float64 `yaml:"base_turn_rate"`
	BaseLookUpRate  float64 `yaml:"base_look_up_rate"`
	MouseTurnRate   float64 `yaml:"mouse_turn_rate"`
	MouseLookUpRate float64 `yaml:"mouse_look_up_rate"`
}

type CameraSpec struct {
	BoomOffset Vec3Spec `yaml:"boom_offset"`
	FOV        float64  `yaml:"fov"`
	Near       float64  `yaml:"near"`
	Far        float64  `yaml:"far"`
}

type AimSpec struct {
	ZoomedFOV       float64 `yaml:"zoomed_fov"`
	ZoomInterpSpeed float64 `yaml:"zoom_interp_speed"`
}

type FireSpec struct {
	AutomaticFireInterval float64 `yaml:"automatic_fire_interval"`
}

// SpreadSpec overrides crosshair tuning. Zero fields keep the defaults.
type SpreadSpec struct {
	BaseSpread           float64 `yaml:"base_spread"`
	MaxWalkSpeed         float64 `yaml:"max_walk_speed"`
	AirborneTarget       float64 `yaml:"airborne_target"`
	AirborneRiseSpeed    float64 `yaml:"airborne_rise_speed"`
	AirborneRecoverSpeed float64 `yaml:"airborne_recover_speed"`
	AimTarget            float64 `yaml:"aim_target"`
	AimInSpeed           float64 `yaml:"aim_in_speed"`
	AimOutSpeed          float64 `yaml:"aim_out_speed"`
	FiringTarget         float64 `yaml:"firing_target"`
	FiringSpeed          float64 `yaml:"firing_speed"`
	ShootTimeDuration    float64 `yaml:"shoot_time_duration"`
}

type EffectsSpec struct {
	FireSound      string `yaml:"fire_sound"`
	MuzzleFlash    string `yaml:"muzzle_flash"`
	ImpactParticle string `yaml:"impact_particle"`
	BeamParticle   string `yaml:"beam_particle"`
	FireMontage    string `yaml:"fire_montage"`
	FireSection    string `yaml:"fire_section"`
}

type WeaponSpec struct {
	Name         string       `yaml:"name"`
	Collider     ColliderSpec `yaml:"collider"`
	Sockets      []SocketSpec `yaml:"sockets"`
	MuzzleSocket string       `yaml:"muzzle_socket"`
	PickupRadius float64      `yaml:"pickup_radius"`

	Mass           float64 `yaml:"mass"`
	Restitution    float64 `yaml:"restitution"`
	LinearDamping  float64 `yaml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping"`

	ThrowWeaponTime float64 `yaml:"throw_weapon_time"`
	ThrowImpulse    float64 `yaml:"throw_impulse"`
	ThrowTilt       float64 `yaml:"throw_tilt"`
	ThrowYawJitter  float64 `yaml:"throw_yaw_jitter"`
}

func LoadWeaponSpec(name string) (*WeaponSpec, error) {
	spec, err := LoadSpec[WeaponSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type LevelSpec struct {
	Name    string                `yaml:"name"`
	Boxes   []BoxSpec             `yaml:"boxes"`
	Shooter SpawnSpec             `yaml:"shooter"`
	Weapons []WeaponPlacementSpec `yaml:"weapons"`
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BoxSpec struct {
	Name        string     `yaml:"name"`
	Center      Vec3Spec   `yaml:"center"`
	HalfExtents Vec3Spec   `yaml:"half_extents"`
	Color       *YAMLColor `yaml:"color"`
}

type SpawnSpec struct {
	Prefab   string   `yaml:"prefab"`
	Position Vec3Spec `yaml:"position"`
	Yaw      float64  `yaml:"yaw"`
}

type WeaponPlacementSpec struct {
	Prefab   string   `yaml:"prefab"`
	Position Vec3Spec `yaml:"position"`
	Yaw      float64  `yaml:"yaw"`
}

type TransformSpec struct {
	Position Vec3Spec    `yaml:"position"`
	Rotation RotatorSpec `yaml:"rotation"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type RotatorSpec struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

type ColliderSpec struct {
	Shape       string   `yaml:"shape"` // box or sphere
	HalfExtents Vec3Spec `yaml:"half_extents"`
	Radius      float64  `yaml:"radius"`
	Offset      Vec3Spec `yaml:"offset"`
}

type SocketSpec struct {
	Name     string      `yaml:"name"`
	Offset   Vec3Spec    `yaml:"offset"`
	Rotation RotatorSpec `yaml:"rotation"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
