package handler

// createBlogRequest is the payload for POST /api/blogs. Likes is a
// pointer so an absent field can default to zero downstream; when
// present it must be non-negative.
type createBlogRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url"   validate:"required"`
	Likes  *int   `json:"likes" validate:"omitempty,gte=0"`
}

// updateBlogRequest is the payload for PUT /api/blogs/:id.
type updateBlogRequest struct {
	Likes *int `json:"likes" validate:"required,gte=0"`
}
