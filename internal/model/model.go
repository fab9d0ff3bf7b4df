package model

import "time"

type Status string

const (
	StatusReading    Status = "reading"
	StatusFinished   Status = "finished"
	StatusWantToRead Status = "want-to-read"
)

type User struct {
	ID          int       `json:"-" db:"id"`
	Username    string    `json:"username" db:"username"`
	DisplayName string    `json:"displayName" db:"display_name"`
	Bio         string    `json:"bio" db:"bio"`
	IsPublic    bool      `json:"-" db:"is_public"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// PublicUser is the projection of a user attached to reviews.
type PublicUser struct {
	Username    string `json:"username" db:"username"`
	DisplayName string `json:"displayName" db:"display_name"`
}

type Book struct {
	ID            int       `json:"id" db:"id"`
	BookUid       string    `json:"bookUid" db:"book_uid"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	ISBN          *string   `json:"isbn,omitempty" db:"isbn"`
	Description   string    `json:"description" db:"description"`
	CoverImage    string    `json:"coverImage" db:"cover_image"`
	Genre         string    `json:"genre" db:"genre"`
	PublishedYear *int      `json:"publishedYear,omitempty" db:"published_year"`
	PageCount     *int      `json:"pageCount,omitempty" db:"page_count"`
	AvgRating     float64   `json:"avgRating" db:"avg_rating"`
	RatingCount   int       `json:"ratingCount" db:"rating_count"`
	AddedBy       int       `json:"-" db:"added_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// TrendingBook carries the shelf-addition count the trending feed sorts by.
type TrendingBook struct {
	Book
	Popularity int `json:"popularity" db:"popularity"`
}

type UserBook struct {
	ID          int        `json:"id" db:"id"`
	UserBookUid string     `json:"userBookUid" db:"user_book_uid"`
	UserID      int        `json:"-" db:"user_id"`
	BookID      int        `json:"-" db:"book_id"`
	Status      Status     `json:"status" db:"status"`
	Rating      *int       `json:"rating,omitempty" db:"rating"`
	Notes       string     `json:"notes" db:"notes"`
	StartDate   *time.Time `json:"startDate,omitempty" db:"start_date"`
	FinishDate  *time.Time `json:"finishDate,omitempty" db:"finish_date"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// ShelfEntry is a shelf row joined with its book.
type ShelfEntry struct {
	UserBook
	Book Book `json:"book" db:"book"`
}

type Review struct {
	ID             int       `json:"id" db:"id"`
	ReviewUid      string    `json:"reviewUid" db:"review_uid"`
	UserID         int       `json:"-" db:"user_id"`
	BookID         int       `json:"-" db:"book_id"`
	Rating         int       `json:"rating" db:"rating"`
	Content        string    `json:"content" db:"content"`
	WouldRecommend bool      `json:"wouldRecommend" db:"would_recommend"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// BookReview is a review joined with its author, as listed under a book.
type BookReview struct {
	Review
	User PublicUser `json:"user" db:"user"`
}

// FeedReview is a review joined with both its author and its book.
type FeedReview struct {
	BookReview
	Book Book `json:"book" db:"book"`
}

type BookDetail struct {
	Book    Book         `json:"book"`
	Reviews []BookReview `json:"reviews"`
}

type TimelineBucket struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Books []ShelfEntry `json:"books"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type BookReviews struct {
	Reviews    []BookReview `json:"reviews"`
	Pagination Pagination   `json:"pagination"`
}

type UserReviews struct {
	Reviews    []FeedReview `json:"reviews"`
	Pagination Pagination   `json:"pagination"`
}

type ProfileUser struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProfileStats struct {
	TotalBooks       int `json:"totalBooks"`
	BooksRead        int `json:"booksRead"`
	CurrentlyReading int `json:"currentlyReading"`
	TotalReviews     int `json:"totalReviews"`
}

type Profile struct {
	User      ProfileUser  `json:"user"`
	Bookshelf []ShelfEntry `json:"bookshelf"`
	Reviews   []FeedReview `json:"reviews"`
	Stats     ProfileStats `json:"stats"`
}

type AddBookRequest struct {
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	ISBN          *string `json:"isbn,omitempty"`
	Description   string  `json:"description"`
	CoverImage    string  `json:"coverImage"`
	Genre         string  `json:"genre"`
	PublishedYear *int    `json:"publishedYear,omitempty"`
	PageCount     *int    `json:"pageCount,omitempty" validate:"omitempty,min=1"`
}

type UpsertShelfRequest struct {
	BookUid string  `json:"bookId" validate:"required,uuid"`
	Status  Status  `json:"status" validate:"required,oneof=reading finished want-to-read"`
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type UpdateShelfRequest struct {
	Status *Status `json:"status,omitempty" validate:"omitempty,oneof=reading finished want-to-read"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type CreateReviewRequest struct {
	BookUid        string `json:"bookId" validate:"required,uuid"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	Content        string `json:"content" validate:"required,min=10,max=2000"`
	WouldRecommend bool   `json:"wouldRecommend"`
}
