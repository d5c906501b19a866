package component

// Attachment pins an entity to a named socket on a parent entity. The
// attachment system rewrites the child's Transform every frame.
type Attachment struct {
	Parent uint64 // ecs.Entity of the wielder
	Socket string
}

var AttachmentComponent = NewComponent[Attachment]()
