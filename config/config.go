package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order follows renderer registration.
const Default ecs.LayerID = iota

// Config holds the logical base resolution. All gameplay coordinates are
// expressed in this space and scaled to the window at draw time.
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Size           float64 // logical side length of the player box
	MinDisplaySize int     // smallest on-screen sprite size after scaling

	// Movement
	MoveSpeed    float64 // base speed, restored whenever no direction is held
	MaxSpeed     float64
	Acceleration float64 // added to the current speed every tick a move is attempted
}

// PhysicsConfig contains the gravity integrator constants used on
// gravity-enabled maps.
type PhysicsConfig struct {
	Gravity       float64
	JumpVelocity  float64
	GroundEpsilon float64

	// Maximum number of 1-unit correction steps per tick
	RiseCorrectionSteps int
	FallCorrectionSteps int
}

// TimingConfig holds the cadence of every timer driven by the scheduler.
type TimingConfig struct {
	SimulationTick time.Duration
	AttackFrame    time.Duration
	IdleFrame      time.Duration
	TransitionStep time.Duration
	Cooldown       time.Duration
}

// TransitionConfig contains the map slide parameters
type TransitionConfig struct {
	Steps         int
	ArrivalMargin float64 // distance from the opposite edge the player arrives at
}

// InteractionConfig contains NPC and shop proximity values
type InteractionConfig struct {
	NPCRange      float64
	ShopRange     float64
	NPCMarkerSize float64
}

// ShopItem is a purchasable item
type ShopItem struct {
	Name  string
	Price int
}

// EconomyConfig contains starting gold, quest reward and the shop stock.
type EconomyConfig struct {
	StartingGold int
	QuestReward  int
	Items        []ShopItem
}

// SpriteConfig names the sprite sheets loaded from the assets directory.
type SpriteConfig struct {
	FrameWidth      int // width of a single frame inside a horizontal strip
	PlaceholderSize int
	PlaceholderGray uint8
	Walk            map[Direction]string
	Attack          string
	BackAttack      string
	Shop            string
}

// UIConfig contains HUD and dialog configuration values
type UIConfig struct {
	HintColor       color.RGBA
	PortalHintColor color.RGBA
	HUDTextColor    color.RGBA
	HUDTextBgColor  color.RGBA
	NPCColor        color.RGBA
	NPCOutline      color.RGBA
	DebugWallColor  color.RGBA
	DebugTrigColor  color.RGBA
	DialogBgColor   color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	HintFontSize    float64
	HUDFontSize     float64
	DialogFontSize  float64
	TitleFontSize   float64
}

// DebugConfig contains developer toggles, overridable by CLI flags
type DebugConfig struct {
	SkipMenu  bool // Skip menu and go directly to game
	ShowWalls bool // Start with the wall overlay enabled
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Timing TimingConfig
var Transition TransitionConfig
var Interaction InteractionConfig
var Economy EconomyConfig
var Sprites SpriteConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Slate        = color.RGBA{R: 40, G: 44, B: 52, A: 235}
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 768,
		TPS:    60,
	}

	Player = PlayerConfig{
		Size:           64,
		MinDisplaySize: 4,
		MoveSpeed:      6,
		MaxSpeed:       24,
		Acceleration:   1,
	}

	Physics = PhysicsConfig{
		Gravity:             1.6,
		JumpVelocity:        -20,
		GroundEpsilon:       1e-3,
		RiseCorrectionSteps: 8,
		FallCorrectionSteps: 16,
	}

	Timing = TimingConfig{
		SimulationTick: 50 * time.Millisecond,
		AttackFrame:    80 * time.Millisecond,
		IdleFrame:      180 * time.Millisecond,
		TransitionStep: 16 * time.Millisecond,
		Cooldown:       300 * time.Millisecond,
	}

	Transition = TransitionConfig{
		Steps:         18,
		ArrivalMargin: 10,
	}

	Interaction = InteractionConfig{
		NPCRange:      50,
		ShopRange:     60,
		NPCMarkerSize: 32,
	}

	Economy = EconomyConfig{
		StartingGold: 100,
		QuestReward:  50,
		Items: []ShopItem{
			{Name: "Health Potion", Price: 30},
			{Name: "Mana Potion", Price: 20},
			{Name: "Enhancement Stone", Price: 50},
		},
	}

	Sprites = SpriteConfig{
		FrameWidth:      32,
		PlaceholderSize: 64,
		PlaceholderGray: 200,
		Walk: map[Direction]string{
			DirDown:  "player_down.png",
			DirUp:    "player_up.png",
			DirLeft:  "player_left.png",
			DirRight: "player_right.png",
		},
		Attack:     "player_attack.png",
		BackAttack: "player_back_attack.png",
		Shop:       "shop_spritesheet.png",
	}

	UI = UIConfig{
		HintColor:       Black,
		PortalHintColor: Blue,
		HUDTextColor:    White,
		HUDTextBgColor:  BlackOverlay,
		NPCColor:        Orange,
		NPCOutline:      Black,
		DebugWallColor:  Red,
		DebugTrigColor:  Yellow,
		DialogBgColor:   Slate,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   color.RGBA{R: 30, G: 60, B: 110, A: 255},
		HintFontSize:    14,
		HUDFontSize:     16,
		DialogFontSize:  18,
		TitleFontSize:   36,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		ShowWalls: false,
	}
}
