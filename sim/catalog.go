package sim

// CellID identifies a cell type in the catalog.
type CellID uint16

// Catalog entry ids. Values are append-only: never renumber an existing
// entry, only add new ones at the end.
const (
	Wall CellID = iota
	Mover
	Puller
	Pullsher
	Generator
	RotatorCW
	RotatorCCW
	Orientator
	Push
	Slide
	Trash
	Enemy
	Mirror
	CrossMirror
	TrashMover
	Speed
	Movler
	OneDir
	SlideWall
	GeneratorCW
	GeneratorCCW
	TrashPuller
	Ghost
	Stone
	Replicator
	Sucker
	GeneratorCross
	Mailbox
	PostOffice
	PhysicalGenerator
	Rotator180
	Tunnel
	FixedPullsher
)

// CatalogEntry is one static row of the cell catalog: everything about a
// cell type that does not depend on a particular instance's direction.
type CatalogEntry struct {
	Name        string
	Description string
	// Sides is the rotational symmetry class: 1 (no visible direction), 2
	// (front/back equivalent to left/right), or 4 (fully directional).
	Sides       uint8
	TextureName string
}

// Catalog maps a CellID to its static entry. Ids start at 0 (Wall); the
// encoding of Mover as base62 "1" in the Q1 wire format depends on this.
var Catalog = map[CellID]CatalogEntry{
	Wall:              {"Wall", "A solid wall that can't be moved by anything.", 1, "wall"},
	Mover:             {"Mover", "Pushes the cells in front of it.", 4, "mover"},
	Puller:            {"Puller", "Pulls the cells behind it.", 4, "puller"},
	Pullsher:          {"Pullsher", "Pulls the cells behind it and pushes the cells in front of it.", 4, "pullsher"},
	Generator:         {"Generator", "Generates the cell behind it to its front.", 4, "generator"},
	RotatorCW:         {"Rotator CW", "Rotates all touching cells clockwise.", 1, "rotator_cw"},
	RotatorCCW:        {"Rotator CCW", "Rotates all touching cells counter-clockwise.", 1, "rotator_ccw"},
	Orientator:        {"Orientator", "Rotates all touching cells to its own direction.", 4, "orientator"},
	Push:              {"Push", "A normal cell that does nothing on its own.", 1, "push"},
	Slide:             {"Slide", "Like Push, but can only be moved along its own axis.", 2, "slide"},
	Trash:             {"Trash", "Trashes anything moved into it.", 1, "trash"},
	Enemy:             {"Enemy", "Destroys itself and anything that collides with it.", 1, "enemy"},
	Mirror:            {"Mirror", "Swaps the cells on either side of itself.", 2, "mirror"},
	CrossMirror:       {"Cross Mirror", "Swaps the cells on all four sides of itself.", 1, "cross_mirror"},
	TrashMover:        {"Trash Mover", "Deletes the cell ahead, then moves forward.", 4, "trash_mover"},
	Speed:             {"Speed", "Moves forward only into empty space, twice as eagerly.", 4, "speed"},
	Movler:            {"Movler", "A mover variant that also contributes push force like a mover.", 4, "movler"},
	OneDir:            {"One-Way", "Can only be moved in the direction it faces.", 4, "one_dir"},
	SlideWall:         {"Slide Wall", "A wall that can slide along its own axis.", 2, "slide_wall"},
	GeneratorCW:       {"Generator CW", "Generates the cell behind it, rotated, to its right.", 4, "generator_cw"},
	GeneratorCCW:      {"Generator CCW", "Generates the cell behind it, rotated, to its left.", 4, "generator_ccw"},
	TrashPuller:       {"Trash Puller", "Deletes the cell behind it, then pulls the rest of the chain forward.", 4, "trash_puller"},
	Ghost:             {"Ghost", "Cannot be rotated, generated, or otherwise acted on.", 1, "ghost"},
	Stone:             {"Stone", "Falls under gravity in the direction it faces.", 4, "stone"},
	Replicator:        {"Replicator", "Duplicates the cell directly in front of it.", 4, "replicator"},
	Sucker:            {"Sucker", "Pulls the cell in front of it towards itself.", 4, "sucker"},
	GeneratorCross:    {"Generator Cross", "Generates straight ahead and to the left in one tick.", 4, "generator_cross"},
	Mailbox:           {"Mailbox", "Holds a stored cell until it cannot move, then releases it.", 4, "mailbox"},
	PostOffice:        {"Post Office", "Stores the cell behind it into an adjacent mailbox.", 4, "postoffice"},
	PhysicalGenerator: {"Physical Generator", "Generates ahead, recoiling backward if blocked.", 4, "physical_generator"},
	Rotator180:        {"Rotator 180", "Rotates all touching cells by a half turn.", 1, "rotator_180"},
	Tunnel:            {"Tunnel", "Teleports the cell behind it to the far side.", 4, "tunnel"},
	FixedPullsher:     {"Fixed Pullsher", "Like Tunnel, but also pulls the chain two cells behind forward.", 4, "fixed_pullsher"},
}

// Sides returns the rotational symmetry class of id, defaulting to 4
// (fully directional) for an id missing from the catalog.
func Sides(id CellID) uint8 {
	if e, ok := Catalog[id]; ok {
		return e.Sides
	}
	return 4
}
