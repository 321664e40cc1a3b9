// This file implements the recursive game object tree: 18 base fields, an
// inventory header, a pid-derived payload variant, and inventory children.
//
// Grounded directly on ali-raheem/fallout-se's crates/fallout_core/src/
// object.rs (GameObject::parse/emit_to_vec, parse_item_object_data,
// score_next_data) — field names, the item-width probe, and its scoring are
// taken verbatim from that source. The sum-typed payload is modeled as an
// interface the way rep/repcmd/cmd.go models Cmd: a common struct plus a
// family of payload types, selected once at parse time and never re-derived.

package fosave

import "github.com/fosave/fosave/internal/breader"

// Object types, extracted from the pid high nibble: (pid >> 24) & 0x0F.
const (
	ObjTypeItem    = 0
	ObjTypeCritter = 1
	ObjTypeMisc    = 5
)

func objTypeFromPID(pid int32) int32 {
	return (pid >> 24) & 0x0F
}

// Payload is the sum-typed per-object-type tail. The concrete type is
// fixed at parse time from the stored pid and never re-derived from a
// possibly-edited pid (see spec's Design Notes on sum-typed payloads).
type Payload interface {
	isPayload()
}

// CritterPayload is the 11-word payload for critter objects (type 1).
type CritterPayload struct {
	Field0          int32
	DamageLastTurn  int32
	Maneuver        int32
	AP              int32
	Results         int32
	AIPacket        int32
	Team            int32
	WhoHitMeCID     int32
	HP              int32
	Radiation       int32
	Poison          int32
}

func (CritterPayload) isPayload() {}

// ItemPayload is the flags-plus-probed-tail payload for item objects
// (type 0). ExtraBytes is the probed width (0, 4, or 8); ExtraData's
// length must equal it on emit.
type ItemPayload struct {
	Flags      int32
	ExtraBytes int
	ExtraData  []byte
}

func (ItemPayload) isPayload() {}

// SceneryPayload is the single flags word written by scenery, walls, and
// any other object type not otherwise special-cased.
type SceneryPayload struct {
	Flags int32
}

func (SceneryPayload) isPayload() {}

// MiscPayload is the four-word payload written only for misc objects whose
// pid falls in the exit-grid range.
type MiscPayload struct {
	Map       int32
	Tile      int32
	Elevation int32
	Rotation  int32
}

func (MiscPayload) isPayload() {}

// OtherPayload is the empty payload for misc objects outside the exit-grid
// range.
type OtherPayload struct{}

func (OtherPayload) isPayload() {}

// InventoryItem is one (quantity, object) inventory child entry.
type InventoryItem struct {
	Quantity int32
	Object   *GameObject
}

// GameObject is the recursive game object record.
type GameObject struct {
	ID             int32
	Tile           int32
	X              int32
	Y              int32
	SX             int32
	SY             int32
	Frame          int32
	Rotation       int32
	FID            int32
	Flags          int32
	Elevation      int32
	PID            int32
	CID            int32
	LightDistance  int32
	LightIntensity int32
	Outline        int32
	SID            int32
	ScriptIndex    int32

	// InventoryLength is the stored inventory_length field, preserved so
	// the -1 sentinel can be re-emitted when the child list is empty.
	InventoryLength   int32
	InventoryCapacity int32

	Data      Payload
	Inventory []InventoryItem
}

// parseGameObject parses one GameObject (and, recursively, its inventory)
// from r.
func parseGameObject(r *breader.Reader) (*GameObject, error) {
	o := &GameObject{}
	var err error
	fields := []*int32{
		&o.ID, &o.Tile, &o.X, &o.Y, &o.SX, &o.SY, &o.Frame, &o.Rotation,
		&o.FID, &o.Flags, &o.Elevation, &o.PID, &o.CID, &o.LightDistance,
		&o.LightIntensity, &o.Outline, &o.SID, &o.ScriptIndex,
	}
	for _, f := range fields {
		if *f, err = r.I32(); err != nil {
			return nil, parseErrorf(err, "game object base field")
		}
	}

	if o.InventoryLength, err = r.I32(); err != nil {
		return nil, parseErrorf(err, "inventory_length")
	}
	if o.InventoryCapacity, err = r.I32(); err != nil {
		return nil, parseErrorf(err, "inventory_capacity")
	}
	if _, err = r.I32(); err != nil { // placeholder, always discarded
		return nil, parseErrorf(err, "inventory placeholder")
	}

	if o.InventoryLength < -1 || o.InventoryLength > 1000 {
		return nil, parseErrorf(nil, "invalid inventory_length for pid")
	}

	objType := objTypeFromPID(o.PID)
	switch objType {
	case ObjTypeCritter:
		o.Data, err = parseCritterPayload(r)
	case ObjTypeItem:
		o.Data, err = parseItemPayload(r)
	case ObjTypeMisc:
		if o.PID >= 0x05000010 && o.PID <= 0x05000017 {
			o.Data, err = parseMiscPayload(r)
		} else {
			o.Data = OtherPayload{}
		}
	default:
		var flags int32
		flags, err = r.I32()
		o.Data = SceneryPayload{Flags: flags}
	}
	if err != nil {
		return nil, err
	}

	n := o.InventoryLength
	if n < 0 {
		n = 0
	}
	o.Inventory = make([]InventoryItem, 0, n)
	for i := int32(0); i < n; i++ {
		qty, err := r.I32()
		if err != nil {
			return nil, parseErrorf(err, "inventory item quantity")
		}
		child, err := parseGameObject(r)
		if err != nil {
			return nil, err
		}
		o.Inventory = append(o.Inventory, InventoryItem{Quantity: qty, Object: child})
	}

	return o, nil
}

func parseCritterPayload(r *breader.Reader) (Payload, error) {
	vals, err := r.I32Slice(11)
	if err != nil {
		return nil, parseErrorf(err, "critter payload")
	}
	return CritterPayload{
		Field0: vals[0], DamageLastTurn: vals[1], Maneuver: vals[2], AP: vals[3],
		Results: vals[4], AIPacket: vals[5], Team: vals[6], WhoHitMeCID: vals[7],
		HP: vals[8], Radiation: vals[9], Poison: vals[10],
	}, nil
}

// itemExtraWidths are the candidate widths tried in this exact order so
// ties break toward the lowest width, matching the strict `score > best`
// comparison in the grounding source.
var itemExtraWidths = []int{0, 4, 8}

func parseItemPayload(r *breader.Reader) (Payload, error) {
	flags, err := r.I32()
	if err != nil {
		return nil, parseErrorf(err, "item flags")
	}
	posAfterFlags := r.Tell()

	bestExtra := 0
	bestScore := -1
	for _, extra := range itemExtraWidths {
		if err := r.Seek(posAfterFlags + extra); err != nil {
			return nil, parseErrorf(err, "item width probe seek")
		}
		score := scoreNextData(r)
		if score > bestScore {
			bestScore = score
			bestExtra = extra
		}
	}

	if err := r.Seek(posAfterFlags); err != nil {
		return nil, parseErrorf(err, "item width probe rewind")
	}
	extraData, err := r.Bytes(bestExtra)
	if err != nil {
		return nil, parseErrorf(err, "item extra data")
	}
	return ItemPayload{Flags: flags, ExtraBytes: bestExtra, ExtraData: extraData}, nil
}

// scoreNextData scores how plausible the bytes at r's current position look
// as the next record's (quantity, ..., pid, ..., inventory_length) triple,
// restoring r's position before returning. Returns 1 at EOF (the w=0
// candidate always scores at least 1 there and wins).
func scoreNextData(r *breader.Reader) int {
	peekPos := r.Tell()
	defer r.Seek(peekPos) //nolint:errcheck // restoring a valid prior position cannot fail

	nextQty, err := r.I32()
	if err != nil {
		return 1
	}
	if nextQty <= 0 || nextQty > 10000 {
		return 0
	}
	score := 1

	// pid sits 44 bytes after the quantity field within the base fields.
	const pidOffsetFromQty = 4 + 44
	if err := r.Seek(peekPos + pidOffsetFromQty); err != nil {
		return score
	}
	nextPID, err := r.I32()
	if err != nil {
		return score
	}
	nextType := objTypeFromPID(nextPID)
	if nextType < 0 || nextType > 5 {
		return score
	}
	score = 2

	const invLenOffsetFromQty = 4 + 72
	if err := r.Seek(peekPos + invLenOffsetFromQty); err != nil {
		return score
	}
	invLen, err := r.I32()
	if err != nil {
		return score
	}
	if invLen >= 0 && invLen < 1000 {
		score = 3
	}
	return score
}

func parseMiscPayload(r *breader.Reader) (Payload, error) {
	vals, err := r.I32Slice(4)
	if err != nil {
		return nil, parseErrorf(err, "misc payload")
	}
	return MiscPayload{Map: vals[0], Tile: vals[1], Elevation: vals[2], Rotation: vals[3]}, nil
}

// emit writes o (and recursively its inventory) to w.
func (o *GameObject) emit(w *breader.Writer) error {
	w.I32(o.ID)
	w.I32(o.Tile)
	w.I32(o.X)
	w.I32(o.Y)
	w.I32(o.SX)
	w.I32(o.SY)
	w.I32(o.Frame)
	w.I32(o.Rotation)
	w.I32(o.FID)
	w.I32(o.Flags)
	w.I32(o.Elevation)
	w.I32(o.PID)
	w.I32(o.CID)
	w.I32(o.LightDistance)
	w.I32(o.LightIntensity)
	w.I32(o.Outline)
	w.I32(o.SID)
	w.I32(o.ScriptIndex)

	var invLen int32
	if o.InventoryLength < 0 && len(o.Inventory) == 0 {
		invLen = -1
	} else {
		invLen = int32(len(o.Inventory))
	}
	invCap := o.InventoryCapacity
	if c := invLen; c > invCap {
		invCap = c
	}
	if invCap < 0 {
		invCap = 0
	}
	w.I32(invLen)
	w.I32(invCap)
	w.I32(0)

	switch d := o.Data.(type) {
	case CritterPayload:
		w.I32(d.Field0)
		w.I32(d.DamageLastTurn)
		w.I32(d.Maneuver)
		w.I32(d.AP)
		w.I32(d.Results)
		w.I32(d.AIPacket)
		w.I32(d.Team)
		w.I32(d.WhoHitMeCID)
		w.I32(d.HP)
		w.I32(d.Radiation)
		w.I32(d.Poison)
	case ItemPayload:
		if len(d.ExtraData) != d.ExtraBytes {
			return parseErrorf(nil, "item extra data length mismatch")
		}
		w.I32(d.Flags)
		w.RawBytes(d.ExtraData)
	case SceneryPayload:
		w.I32(d.Flags)
	case MiscPayload:
		w.I32(d.Map)
		w.I32(d.Tile)
		w.I32(d.Elevation)
		w.I32(d.Rotation)
	case OtherPayload:
		// no payload bytes
	default:
		return parseErrorf(nil, "unknown payload variant")
	}

	for _, item := range o.Inventory {
		w.I32(item.Quantity)
		if err := item.Object.emit(w); err != nil {
			return err
		}
	}
	return nil
}

// EmitBytes returns o's byte-exact serialization.
func (o *GameObject) EmitBytes() ([]byte, error) {
	w := breader.NewWriter()
	if err := o.emit(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
