package lesson

import (
	"encoding/json"
	"fmt"
)

// BlockKind is the type tag discriminating content block variants on the wire.
type BlockKind string

const (
	KindExplainer  BlockKind = "explainer"
	KindBossBattle BlockKind = "bossBattle"
	KindLevelMap   BlockKind = "levelMap"
	KindVictory    BlockKind = "victory"

	// KindUnknown marks a block whose type tag no renderer recognizes.
	// Unknown blocks are preserved (not rejected) and skipped at dispatch.
	KindUnknown BlockKind = ""
)

// Block is a closed tagged union over content block variants. Exactly one
// variant pointer is non-nil, matching Kind. A block decoded from an
// unrecognized type tag has Kind == KindUnknown and keeps the original tag
// in RawKind.
type Block struct {
	Kind BlockKind

	Explainer  *Explainer
	BossBattle *BossBattle
	LevelMap   *LevelMap
	Victory    *Victory

	// RawKind holds the original wire tag for unknown blocks.
	RawKind string
}

// Explainer is an ungraded explanatory card. Advancing it always succeeds.
type Explainer struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Encouragement string `json:"encouragement,omitempty"`
}

// BossBattle is a graded quiz challenge. Exactly one answer may be submitted
// per instance; the progression engine ignores repeat submissions.
type BossBattle struct {
	BossName      string   `json:"bossName"`
	BossHealth    int      `json:"bossHealth"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Hint          string   `json:"hint,omitempty"`
	XPReward      int      `json:"xpReward"`
}

// LevelStatus is the display state of one level on a level map.
type LevelStatus string

const (
	LevelCompleted LevelStatus = "completed"
	LevelCurrent   LevelStatus = "current"
	LevelLocked    LevelStatus = "locked"
)

// Level is a single entry on a level map.
type Level struct {
	Number int         `json:"number"`
	Title  string      `json:"title"`
	Status LevelStatus `json:"status"`
}

// LevelMap is an informational progress overview. It never grades or
// advances the session.
type LevelMap struct {
	Levels []Level `json:"levels"`
}

// Victory is the terminal display block. Its Stats are overlaid with a
// freshly computed snapshot at dispatch time; the static value here is only
// a fallback for clients rendering without a dispatcher.
type Victory struct {
	Title         string         `json:"title"`
	Encouragement string         `json:"encouragement"`
	Stats         *StatsSnapshot `json:"stats,omitempty"`
}

// blockEnvelope is the wire form: {"type": ..., "props": {...}}.
type blockEnvelope struct {
	Type  string          `json:"type"`
	Props json.RawMessage `json:"props"`
}

// MarshalJSON encodes the block as its {type, props} envelope.
func (b Block) MarshalJSON() ([]byte, error) {
	var props any
	typ := string(b.Kind)
	switch b.Kind {
	case KindExplainer:
		props = b.Explainer
	case KindBossBattle:
		props = b.BossBattle
	case KindLevelMap:
		props = b.LevelMap
	case KindVictory:
		props = b.Victory
	case KindUnknown:
		typ = b.RawKind
		props = struct{}{}
	default:
		return nil, fmt.Errorf("marshal block: unhandled kind %q", b.Kind)
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blockEnvelope{Type: typ, Props: raw})
}

// UnmarshalJSON decodes a {type, props} envelope into the matching variant.
// Unrecognized type tags produce a KindUnknown block rather than an error,
// so one bad block never poisons a whole stage.
func (b *Block) UnmarshalJSON(data []byte) error {
	var env blockEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("unmarshal block envelope: %w", err)
	}

	switch BlockKind(env.Type) {
	case KindExplainer:
		var v Explainer
		if err := json.Unmarshal(env.Props, &v); err != nil {
			return fmt.Errorf("unmarshal explainer props: %w", err)
		}
		*b = Block{Kind: KindExplainer, Explainer: &v}
	case KindBossBattle:
		var v BossBattle
		if err := json.Unmarshal(env.Props, &v); err != nil {
			return fmt.Errorf("unmarshal bossBattle props: %w", err)
		}
		*b = Block{Kind: KindBossBattle, BossBattle: &v}
	case KindLevelMap:
		var v LevelMap
		if err := json.Unmarshal(env.Props, &v); err != nil {
			return fmt.Errorf("unmarshal levelMap props: %w", err)
		}
		*b = Block{Kind: KindLevelMap, LevelMap: &v}
	case KindVictory:
		var v Victory
		if err := json.Unmarshal(env.Props, &v); err != nil {
			return fmt.Errorf("unmarshal victory props: %w", err)
		}
		*b = Block{Kind: KindVictory, Victory: &v}
	default:
		*b = Block{Kind: KindUnknown, RawKind: env.Type}
	}
	return nil
}

// Graded reports whether acknowledging this block carries a correctness
// judgment.
func (b Block) Graded() bool {
	return b.Kind == KindBossBattle
}

// NewExplainer wraps an Explainer in a Block.
func NewExplainer(v Explainer) Block { return Block{Kind: KindExplainer, Explainer: &v} }

// NewBossBattle wraps a BossBattle in a Block.
func NewBossBattle(v BossBattle) Block { return Block{Kind: KindBossBattle, BossBattle: &v} }

// NewLevelMap wraps a LevelMap in a Block.
func NewLevelMap(v LevelMap) Block { return Block{Kind: KindLevelMap, LevelMap: &v} }

// NewVictory wraps a Victory in a Block.
func NewVictory(v Victory) Block { return Block{Kind: KindVictory, Victory: &v} }
