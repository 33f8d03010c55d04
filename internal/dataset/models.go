// Package dataset contains the row models emitted by the generation pipeline.
// Every struct maps to one table of the target schema; ids are dense integers
// assigned by the stage that produces the row, so foreign keys always resolve
// by construction.
package dataset

import "time"

// Table names double as the entity keys recorded in the pipeline count table.
const (
	TableGenres         = "genres"
	TableUsers          = "users"
	TableArtists        = "artists"
	TableAlbums         = "albums"
	TableSongs          = "songs"
	TableFollowers      = "artists_followers"
	TablePlaylists      = "playlists"
	TablePlaylistSongs  = "playlist_songs"
	TableLikedSongs     = "liked_songs"
	TablePlans          = "plans"
	TableSubscriptions  = "subscriptions"
	TableMemberships    = "member_subscription"
	TablePaymentMethods = "payment_methods"
	TableOrders         = "orders"
)

// Artifact is the full row set a stage produced for one table.
type Artifact struct {
	Table string
	Rows  []any
}

type Genre struct {
	GenreID     int    `gorm:"column:genre_id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
}

func (Genre) TableName() string { return TableGenres }

type User struct {
	UserID           int       `gorm:"column:user_id;primaryKey"`
	Username         string    `gorm:"column:username"`
	Email            string    `gorm:"column:email"`
	Phone            string    `gorm:"column:phone"`
	Password         string    `gorm:"column:password"`
	DateOfBirth      time.Time `gorm:"column:date_of_birth"`
	Country          string    `gorm:"column:country"`
	SubscriptionType string    `gorm:"column:subscription_type"`
	ProfileImage     string    `gorm:"column:profile_image"`
}

func (User) TableName() string { return TableUsers }

type Artist struct {
	ArtistID    int       `gorm:"column:artist_id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Bio         string    `gorm:"column:bio"`
	Country     string    `gorm:"column:country"`
	DateOfBirth time.Time `gorm:"column:date_of_birth"`
	GenreID     int       `gorm:"column:genre_id"`
}

func (Artist) TableName() string { return TableArtists }

type Album struct {
	AlbumID     int       `gorm:"column:album_id;primaryKey"`
	Title       string    `gorm:"column:title"`
	ReleaseDate time.Time `gorm:"column:release_date"`
	Type        string    `gorm:"column:type"`
	Image       string    `gorm:"column:image"`
	GenreID     int       `gorm:"column:genre_id"`
	ArtistID    int       `gorm:"column:artist_id"`
}

func (Album) TableName() string { return TableAlbums }

type Song struct {
	SongID   int    `gorm:"column:song_id;primaryKey"`
	Title    string `gorm:"column:title"`
	Duration int    `gorm:"column:duration"`
	ArtistID int    `gorm:"column:artist_id"`
	GenreID  int    `gorm:"column:genre_id"`
	AlbumID  int    `gorm:"column:album_id"`
	Streams  int    `gorm:"column:streams"`
}

func (Song) TableName() string { return TableSongs }

// ArtistFollower is one user-follows-artist edge.
type ArtistFollower struct {
	UserID   int `gorm:"column:user_id"`
	ArtistID int `gorm:"column:artist_id"`
}

func (ArtistFollower) TableName() string { return TableFollowers }

type Playlist struct {
	PlaylistID int    `gorm:"column:playlist_id;primaryKey"`
	Name       string `gorm:"column:name"`
	UserID     int    `gorm:"column:user_id"`
	Visibility string `gorm:"column:visibility"`
}

func (Playlist) TableName() string { return TablePlaylists }

type PlaylistSong struct {
	PlaylistID int `gorm:"column:playlist_id"`
	SongID     int `gorm:"column:song_id"`
}

func (PlaylistSong) TableName() string { return TablePlaylistSongs }

type LikedSong struct {
	UserID int `gorm:"column:user_id"`
	SongID int `gorm:"column:song_id"`
}

func (LikedSong) TableName() string { return TableLikedSongs }

// Plan is immutable reference data; the catalog is fixed at five rows.
type Plan struct {
	PlanID      int     `gorm:"column:plan_id;primaryKey"`
	Plan        string  `gorm:"column:plan"`
	Price       float64 `gorm:"column:price"`
	Description string  `gorm:"column:description"`
	MaxMember   int     `gorm:"column:max_member"`
}

func (Plan) TableName() string { return TablePlans }

// SubscriptionStatus represents lifecycle states for a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusDisabled SubscriptionStatus = "disabled"
)

// Subscription is one billing group. Owner and members are persisted through
// member_subscription rows, not on the subscription itself.
type Subscription struct {
	SubID      int                `gorm:"column:sub_id;primaryKey"`
	DateStart  time.Time          `gorm:"column:date_start"`
	DateFinish *time.Time         `gorm:"column:date_finish"`
	Recurring  bool               `gorm:"column:recorrency"`
	Status     SubscriptionStatus `gorm:"column:status"`
	PlanID     int                `gorm:"column:plan_id"`

	OwnerID   int   `gorm:"-"`
	MemberIDs []int `gorm:"-"`
}

func (Subscription) TableName() string { return TableSubscriptions }

// MembershipRole distinguishes the paying owner from attached members.
type MembershipRole string

const (
	RoleOwner  MembershipRole = "owner"
	RoleMember MembershipRole = "member"
)

type Membership struct {
	UserID int            `gorm:"column:user_id"`
	SubID  int            `gorm:"column:sub_id"`
	Role   MembershipRole `gorm:"column:role"`
}

func (Membership) TableName() string { return TableMemberships }

type PaymentMethod struct {
	MethodID   int       `gorm:"column:method_id;primaryKey"`
	UserID     int       `gorm:"column:user_id"`
	MethodType string    `gorm:"column:method_type"`
	CardBrand  string    `gorm:"column:card_brand"`
	CardLast4  string    `gorm:"column:card_last4"`
	ExpiryDate time.Time `gorm:"column:expiry_date"`
	Token      string    `gorm:"column:token"`
}

func (PaymentMethod) TableName() string { return TablePaymentMethods }

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusRefunded  OrderStatus = "refunded"
)

type Order struct {
	OrderID       int         `gorm:"column:order_id;primaryKey"`
	UserID        int         `gorm:"column:user_id"`
	PlanID        int         `gorm:"column:plan_id"`
	MethodID      int         `gorm:"column:method_id"`
	Amount        float64     `gorm:"column:amount"`
	Status        OrderStatus `gorm:"column:status"`
	TransactionID string      `gorm:"column:transaction_id"`
	CreatedAt     time.Time   `gorm:"column:created_at"`
}

func (Order) TableName() string { return TableOrders }
