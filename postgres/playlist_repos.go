package postgres

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/playlists"
)

var _ playlists.Repo = (*PlaylistRepo)(nil)

type PlaylistRepo struct {
	db *gorm.DB
}

func NewPlaylistRepo(db *gorm.DB) *PlaylistRepo {
	return &PlaylistRepo{db: db}
}

func (r *PlaylistRepo) Create(playlist *playlists.Playlist) error {
	err := r.db.Create(playlist).Error
	return apperrors.Wrapf(err, "postgres.PlaylistRepo.Create")
}

func (r *PlaylistRepo) Get(id string) (*playlists.Playlist, error) {
	var playlist playlists.Playlist
	if err := r.db.Where("id = ?", id).First(&playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("playlist %q", id)
		}
		return nil, apperrors.Wrapf(err, "postgres.PlaylistRepo.Get")
	}
	return &playlist, nil
}

// Delete removes the playlist and cascades over its memberships,
// collaborations and activity entries in one transaction.
func (r *PlaylistRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&playlists.Membership{}, "playlist_id = ?", id).Error; err != nil {
			return apperrors.Wrapf(err, "postgres.PlaylistRepo.Delete memberships")
		}
		if err := tx.Delete(&playlists.Collaboration{}, "playlist_id = ?", id).Error; err != nil {
			return apperrors.Wrapf(err, "postgres.PlaylistRepo.Delete collaborations")
		}
		if err := tx.Delete(&playlists.Activity{}, "playlist_id = ?", id).Error; err != nil {
			return apperrors.Wrapf(err, "postgres.PlaylistRepo.Delete activities")
		}

		result := tx.Delete(&playlists.Playlist{}, "id = ?", id)
		if result.Error != nil {
			return apperrors.Wrapf(result.Error, "postgres.PlaylistRepo.Delete")
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFoundf("playlist %q", id)
		}
		return nil
	})
}

func (r *PlaylistRepo) ListForUser(userID string) ([]playlists.PlaylistWithOwner, error) {
	listed := make([]playlists.PlaylistWithOwner, 0)
	err := r.db.Table("playlists").
		Select("playlists.id, playlists.name, users.username").
		Joins("JOIN users ON users.id = playlists.owner_id").
		Joins("LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id AND collaborations.user_id = ?", userID).
		Where("playlists.owner_id = ? OR collaborations.user_id IS NOT NULL", userID).
		Order("playlists.created_at").
		Scan(&listed).Error
	if err != nil {
		return nil, apperrors.Wrapf(err, "postgres.PlaylistRepo.ListForUser")
	}
	return listed, nil
}

var _ playlists.MembershipRepo = (*MembershipRepo)(nil)

type MembershipRepo struct {
	db *gorm.DB
}

func NewMembershipRepo(db *gorm.DB) *MembershipRepo {
	return &MembershipRepo{db: db}
}

func (r *MembershipRepo) Add(playlistID, songID string) error {
	membership := playlists.Membership{PlaylistID: playlistID, SongID: songID}
	if err := r.db.Create(&membership).Error; err != nil {
		if isUniqueConstraintError(err) {
			return apperrors.Invariantf("song already in playlist")
		}
		return apperrors.Wrapf(err, "postgres.MembershipRepo.Add")
	}
	return nil
}

func (r *MembershipRepo) Remove(playlistID, songID string) error {
	result := r.db.Delete(&playlists.Membership{}, "playlist_id = ? AND song_id = ?", playlistID, songID)
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "postgres.MembershipRepo.Remove")
	}
	if result.RowsAffected == 0 {
		return apperrors.Invariantf("song not in playlist")
	}
	return nil
}

func (r *MembershipRepo) ListSongIDs(playlistID string) ([]string, error) {
	songIDs := make([]string, 0)
	err := r.db.Model(&playlists.Membership{}).
		Where("playlist_id = ?", playlistID).
		Order("id").
		Pluck("song_id", &songIDs).Error
	if err != nil {
		return nil, apperrors.Wrapf(err, "postgres.MembershipRepo.ListSongIDs")
	}
	return songIDs, nil
}

var _ playlists.CollaborationRepo = (*CollaborationRepo)(nil)

type CollaborationRepo struct {
	db *gorm.DB
}

func NewCollaborationRepo(db *gorm.DB) *CollaborationRepo {
	return &CollaborationRepo{db: db}
}

// Add relies on the pair's uniqueness index to settle the race between two
// concurrent grants; the losing insert surfaces as an invariant violation.
func (r *CollaborationRepo) Add(playlistID, userID string) error {
	collaboration := playlists.Collaboration{PlaylistID: playlistID, UserID: userID}
	if err := r.db.Create(&collaboration).Error; err != nil {
		if isUniqueConstraintError(err) {
			return apperrors.Invariantf("user already collaborates on playlist")
		}
		return apperrors.Wrapf(err, "postgres.CollaborationRepo.Add")
	}
	return nil
}

func (r *CollaborationRepo) Remove(playlistID, userID string) error {
	result := r.db.Delete(&playlists.Collaboration{}, "playlist_id = ? AND user_id = ?", playlistID, userID)
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "postgres.CollaborationRepo.Remove")
	}
	if result.RowsAffected == 0 {
		return apperrors.Invariantf("user does not collaborate on playlist")
	}
	return nil
}

func (r *CollaborationRepo) Exists(playlistID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&playlists.Collaboration{}).
		Where("playlist_id = ? AND user_id = ?", playlistID, userID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrapf(err, "postgres.CollaborationRepo.Exists")
	}
	return count > 0, nil
}

var _ playlists.ActivityRepo = (*ActivityRepo)(nil)

type ActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Record(activity *playlists.Activity) error {
	err := r.db.Create(activity).Error
	return apperrors.Wrapf(err, "postgres.ActivityRepo.Record")
}

func (r *ActivityRepo) ListForPlaylist(playlistID string) ([]playlists.Activity, error) {
	listed := make([]playlists.Activity, 0)
	err := r.db.Where("playlist_id = ?", playlistID).
		Order("time, id").
		Find(&listed).Error
	if err != nil {
		return nil, apperrors.Wrapf(err, "postgres.ActivityRepo.ListForPlaylist")
	}
	return listed, nil
}
