package request

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" binding:"required,url"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Rating      float64 `json:"rating" binding:"min=0,max=5"`
	IsNew       bool    `json:"isNew"`
	Discount    float64 `json:"discount" binding:"min=0,max=100"`
	Stock       int32   `json:"stock" binding:"min=0"`
	Usage       *string `json:"usage,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl,omitempty" binding:"omitempty,url"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Rating      *float64 `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	IsNew       *bool    `json:"isNew,omitempty"`
	Discount    *float64 `json:"discount,omitempty" binding:"omitempty,min=0,max=100"`
	Stock       *int32   `json:"stock,omitempty" binding:"omitempty,min=0"`
	Usage       *string  `json:"usage,omitempty"`
}
