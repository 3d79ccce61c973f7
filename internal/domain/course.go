package domain

import "time"

// Course is the full catalog row as stored, including fields the public
// summary never exposes (disabled flag, searchable text).
type Course struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	ShortDesc    string     `json:"shortDesc"`
	FullDesc     string     `json:"fullDesc"`
	Price        float64    `json:"price"`
	PromoPrice   *float64   `json:"promoPrice,omitempty"`
	CategoryID   int64      `json:"categoryId"`
	InstructorID int64      `json:"instructorId"`
	Views        int64      `json:"views"`
	LastUpdated  time.Time  `json:"lastUpdated"`
	IsDisabled   bool       `json:"isDisabled"`
	IsCompleted  bool       `json:"isCompleted"`
	Thumbnail    string     `json:"thumbnail"`
}

// CourseSummary is the presentation shape returned by catalog queries.
type CourseSummary struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	ShortDesc       string    `json:"shortDesc"`
	Price           float64   `json:"price"`
	PromoPrice      *float64  `json:"promoPrice,omitempty"`
	Thumbnail       string    `json:"thumbnail"`
	CategoryName    string    `json:"categoryName"`
	InstructorName  string    `json:"instructorName"`
	LastUpdated     time.Time `json:"lastUpdated"`
	AverageRating   float64   `json:"averageRating"`
	RatingCount     int       `json:"ratingCount"`
	EnrollmentCount int       `json:"enrollmentCount"`
	IsBestseller    bool      `json:"isBestseller"`
	IsNew           bool      `json:"isNew"`
}

// CourseDetail adds the per-course aggregates used on the detail page.
type CourseDetail struct {
	Course
	CategoryName       string         `json:"categoryName"`
	ParentCategoryName string         `json:"parentCategoryName,omitempty"`
	InstructorName     string         `json:"instructorName"`
	Rating             RatingAggregate `json:"rating"`
	Distribution       []RatingBucket  `json:"ratingDistribution"`
	EnrollmentCount    int             `json:"enrollmentCount"`
}

// Category rows form a forest; a nil ParentID marks a top-level category.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentId,omitempty"`
}

// CategoryNode is one entry of the hierarchical menu.
type CategoryNode struct {
	Category
	Subcategories []Category `json:"subcategories"`
}

// Review as shown on a course page, with the reviewer name joined in.
type Review struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RatingAggregate is derived on read; Average is rounded to one decimal
// and both fields are zero when a course has no reviews, never null.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RatingBucket is one star bucket of the 5..1 distribution.
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}
