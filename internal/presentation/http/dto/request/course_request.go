package request

// CreateCourseRequest represents a course creation request
type CreateCourseRequest struct {
	Title         string   `json:"title" binding:"required,min=3,max=255"`
	Description   string   `json:"description"`
	Level         string   `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Language      string   `json:"language"`
	ThumbnailKey  *string  `json:"thumbnail_key"`
	MRP           *float64 `json:"mrp" binding:"omitempty,gte=0"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	DurationWeeks int      `json:"duration_weeks" binding:"omitempty,gte=0"`
	Published     bool     `json:"published"`
}

// UpdateCourseRequest represents a course update request
type UpdateCourseRequest struct {
	Title         *string  `json:"title" binding:"omitempty,min=3,max=255"`
	Description   *string  `json:"description"`
	Level         *string  `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	ThumbnailKey  *string  `json:"thumbnail_key"`
	MRP           *float64 `json:"mrp" binding:"omitempty,gte=0"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	DurationWeeks *int     `json:"duration_weeks" binding:"omitempty,gte=0"`
	Published     *bool    `json:"published"`
	ClearMRP      bool     `json:"clear_mrp"`
	ClearPrice    bool     `json:"clear_price"`
}

// CreateModuleRequest represents a course module creation request
type CreateModuleRequest struct {
	Title           string  `json:"title" binding:"required,min=2,max=255"`
	Position        int     `json:"position" binding:"gte=0"`
	VideoKey        *string `json:"video_key"`
	DurationMinutes int     `json:"duration_minutes" binding:"omitempty,gte=0"`
}

// UpdateModuleRequest represents a course module update request
type UpdateModuleRequest struct {
	Title           *string `json:"title" binding:"omitempty,min=2,max=255"`
	Position        *int    `json:"position" binding:"omitempty,gte=0"`
	VideoKey        *string `json:"video_key"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,gte=0"`
}
