// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BookStatus is the reading state of a book on the user's shelf.
type BookStatus string

const (
	BookWantToRead BookStatus = "want-to-read"
	BookReading    BookStatus = "reading"
	BookFinished   BookStatus = "finished"
)

// Book is a single title on the user's shelf together with reading progress.
type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	CoverURL    string     `json:"coverUrl,omitempty"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	Status      BookStatus `json:"status"`
	Rating      int        `json:"rating,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	StartedAt   int64      `json:"startedAt,omitempty"`
	FinishedAt  int64      `json:"finishedAt,omitempty"`
	AddedAt     int64      `json:"addedAt"`
}

// Friend is another reader the user follows.
type Friend struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	BooksRead   int    `json:"booksRead"`
	CurrentBook string `json:"currentBook,omitempty"`
	AddedAt     int64  `json:"addedAt"`
}

// Activity is an entry of the user's reading feed.
type Activity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	BookID    string `json:"bookId,omitempty"`
	BookTitle string `json:"bookTitle,omitempty"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
}

// Group is a reading club the user belongs to.
type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	CurrentBook string   `json:"currentBook,omitempty"`
	MemberIDs   []string `json:"memberIds"`
	CreatedAt   int64    `json:"createdAt"`
}

// FriendRequest is a pending incoming or outgoing follow request.
type FriendRequest struct {
	ID        string `json:"id"`
	FromName  string `json:"fromName"`
	FromUser  string `json:"fromUser"`
	Outgoing  bool   `json:"outgoing"`
	CreatedAt int64  `json:"createdAt"`
}

// Challenge is the optional yearly reading goal.
type Challenge struct {
	Year      int `json:"year"`
	Goal      int `json:"goal"`
	Completed int `json:"completed"`
}

// UserStats holds aggregated reading counters.
type UserStats struct {
	BooksRead     int      `json:"booksRead"`
	PagesRead     int      `json:"pagesRead"`
	CurrentStreak int      `json:"currentStreak"`
	LongestStreak int      `json:"longestStreak"`
	Achievements  []string `json:"achievements,omitempty"`
}

// UserProfile is the user's public reading profile.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	JoinedAt  int64  `json:"joinedAt,omitempty"`
}
