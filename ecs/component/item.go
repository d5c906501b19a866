package component

type ItemState int

const (
	ItemStatePickup ItemState = iota
	ItemStateEquipInterping
	ItemStatePickedUp
	ItemStateEquipped
	ItemStateFalling
)

func (s ItemState) String() string {
	switch s {
	case ItemStatePickup:
		return "pickup"
	case ItemStateEquipInterping:
		return "equip_interping"
	case ItemStatePickedUp:
		return "picked_up"
	case ItemStateEquipped:
		return "equipped"
	case ItemStateFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Item is any world-pickable object. State is the authoritative gameplay
// value; the item system applies collision and physics settings on change.
type Item struct {
	Name          string
	State         ItemState
	PromptVisible bool
	// Owner is the entity holding the item, zero when none.
	Owner uint64
}

var ItemComponent = NewComponent[Item]()
