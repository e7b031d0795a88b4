package food

type CreateReviewRequest struct {
	Review string `json:"review" binding:"required"`
}

type UpdateReviewRequest struct {
	Review string `json:"review" binding:"required"`
}

// ReviewSort names the two orderings the review list supports.
type ReviewSort string

const (
	SortByDate     ReviewSort = "date"
	SortByUsername ReviewSort = "username"
)
