package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

type seedCommentRow struct {
	ID         uuid.UUID `db:"id"`
	Body       string    `db:"body"`
	Likes      int       `db:"likes"`
	AgeSeconds int       `db:"age_seconds"`
}

type commentAnswerRow struct {
	CommentID  uuid.UUID `db:"comment_id"`
	QuestionID string    `db:"question_id"`
	Answer     string    `db:"answer"`
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) ports.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) ListSeed(ctx context.Context, topicID domain.TopicID) ([]domain.SeedComment, error) {
	var rows []seedCommentRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, body, likes, age_seconds
		FROM seed_comments
		WHERE topic_id = $1
		ORDER BY position
	`, int64(topicID))
	if err != nil {
		return nil, fmt.Errorf("failed to list seed comments: %w", err)
	}

	var answers []commentAnswerRow
	err = r.db.SelectContext(ctx, &answers, `
		SELECT a.comment_id, a.question_id, a.answer
		FROM seed_comment_answers a
		JOIN seed_comments c ON c.id = a.comment_id
		WHERE c.topic_id = $1
	`, int64(topicID))
	if err != nil {
		return nil, fmt.Errorf("failed to list seed comment answers: %w", err)
	}

	ballots := make(map[uuid.UUID]domain.Ballot, len(rows))
	for _, a := range answers {
		if ballots[a.CommentID] == nil {
			ballots[a.CommentID] = domain.Ballot{}
		}
		ballots[a.CommentID][a.QuestionID] = a.Answer
	}

	comments := make([]domain.SeedComment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.SeedComment{
			ID:     row.ID,
			Ballot: ballots[row.ID],
			Body:   row.Body,
			Likes:  row.Likes,
			Age:    time.Duration(row.AgeSeconds) * time.Second,
		})
	}
	return comments, nil
}
