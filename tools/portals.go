package tools

type PostTo99AcresInput struct {
	PropertyType string   `json:"property_type" jsonschema:"enum=apartment,enum=villa,enum=plot,enum=commercial" jsonschema_description:"Type of property"`
	BHK          int      `json:"bhk,omitempty" jsonschema_description:"Number of bedrooms (1-5)"`
	Location     string   `json:"location" jsonschema_description:"Property location (e.g., 'Hinjewadi, Pune')"`
	Price        float64  `json:"price" jsonschema_description:"Price in INR"`
	AreaSqft     int      `json:"area_sqft,omitempty" jsonschema_description:"Area in square feet"`
	Amenities    []string `json:"amenities,omitempty" jsonschema_description:"List of amenities (e.g., ['parking', 'gym', 'pool'])"`
	Images       []string `json:"images,omitempty" jsonschema_description:"Array of image URLs"`
	Description  string   `json:"description,omitempty" jsonschema_description:"Property description (AI will enhance if needed)"`
}

var PostTo99AcresDefinition = NewDefinition[PostTo99AcresInput](
	CategoryPropertyPortals,
	"post_to_99acres",
	"Post a property listing to 99acres.com. Automatically generates SEO-optimized description and schedules posting.",
	Stub("post_to_99acres"),
)

type PostToMagicBricksInput struct {
	PropertyData map[string]any `json:"property_data" jsonschema_description:"Property details (same format as 99acres)"`
	BoostListing bool           `json:"boost_listing,omitempty" jsonschema_description:"Whether to boost listing for better visibility"`
}

var PostToMagicBricksDefinition = NewDefinition[PostToMagicBricksInput](
	CategoryPropertyPortals,
	"post_to_magicbricks",
	"Post a property listing to MagicBricks.com with optimized visibility settings.",
	Stub("post_to_magicbricks"),
)

type UpdateGoogleMyBusinessInput struct {
	BusinessID   string   `json:"business_id" jsonschema_description:"Google My Business location ID"`
	PostType     string   `json:"post_type,omitempty" jsonschema:"enum=OFFER,enum=EVENT,enum=PRODUCT" jsonschema_description:"Type of GMB post"`
	Content      string   `json:"content" jsonschema_description:"Post content"`
	Images       []string `json:"images,omitempty" jsonschema_description:"Image URLs"`
	CallToAction string   `json:"call_to_action,omitempty" jsonschema:"enum=BOOK,enum=CALL,enum=LEARN_MORE,enum=SIGN_UP" jsonschema_description:"CTA button"`
}

var UpdateGoogleMyBusinessDefinition = NewDefinition[UpdateGoogleMyBusinessInput](
	CategoryPropertyPortals,
	"update_google_my_business",
	"Create or update a post on Google My Business for a property listing.",
	Stub("update_google_my_business"),
)
