package catalog

// ProductRating is the aggregate review score shown on product cards.
type ProductRating struct {
	Stars float64 `json:"stars" bson:"stars" validate:"min=0,max=5"`
	Count int     `json:"count" bson:"count" validate:"min=0"`
}

// ProductColor is a selectable color option.
type ProductColor struct {
	Name string `json:"name" bson:"name" validate:"required"`
	Hex  string `json:"hex" bson:"hex" validate:"required"`
}

// Product is a catalog entry as stored and served. The id is assigned
// by the caller and is unique across the collection (enforced by the
// unique index, not by the store's native _id).
//
// Optional fields are pointers so an absent field survives the round
// trip as absent instead of collapsing into an empty value. Rating is
// a pointer for the opposite reason: it is required, and a value
// struct would make an omitted rating indistinguishable from a
// legitimate {stars:0,count:0}.
type Product struct {
	ID          string         `json:"id" bson:"id" validate:"required"`
	Image       string         `json:"image" bson:"image" validate:"required"`
	Name        string         `json:"name" bson:"name" validate:"required"`
	Description string         `json:"description" bson:"description" validate:"required"`
	Rating      *ProductRating `json:"rating" bson:"rating" validate:"required"`
	PriceCents  int            `json:"priceCents" bson:"priceCents" validate:"min=0"`
	Keywords    []string       `json:"keywords" bson:"keywords" validate:"required"`

	Type             *string         `json:"type,omitempty" bson:"type,omitempty"`
	SizeChartLink    *string         `json:"sizeChartLink,omitempty" bson:"sizeChartLink,omitempty"`
	Sizes            *[]string       `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Colors           *[]ProductColor `json:"colors,omitempty" bson:"colors,omitempty" validate:"omitempty,dive"`
	InstructionsLink *string         `json:"instructionsLink,omitempty" bson:"instructionsLink,omitempty"`
	WarrantyLink     *string         `json:"warrantyLink,omitempty" bson:"warrantyLink,omitempty"`
}

// ProductCreate is the inbound creation payload. It carries the same
// shape as Product; keeping a distinct type keeps validation tags at
// the boundary and makes the persisted entity explicit.
type ProductCreate struct {
	ID          string         `json:"id" bson:"id" validate:"required"`
	Image       string         `json:"image" bson:"image" validate:"required"`
	Name        string         `json:"name" bson:"name" validate:"required"`
	Description string         `json:"description" bson:"description" validate:"required"`
	Rating      *ProductRating `json:"rating" bson:"rating" validate:"required"`
	PriceCents  int            `json:"priceCents" bson:"priceCents" validate:"min=0"`
	Keywords    []string       `json:"keywords" bson:"keywords" validate:"required"`

	Type             *string         `json:"type,omitempty" bson:"type,omitempty"`
	SizeChartLink    *string         `json:"sizeChartLink,omitempty" bson:"sizeChartLink,omitempty"`
	Sizes            *[]string       `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Colors           *[]ProductColor `json:"colors,omitempty" bson:"colors,omitempty" validate:"omitempty,dive"`
	InstructionsLink *string         `json:"instructionsLink,omitempty" bson:"instructionsLink,omitempty"`
	WarrantyLink     *string         `json:"warrantyLink,omitempty" bson:"warrantyLink,omitempty"`
}
