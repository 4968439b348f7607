package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

type topicRow struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Body            string    `db:"body"`
	Kind            string    `db:"kind"`
	Participants    int       `db:"participants"`
	Comments        int       `db:"comments"`
	Status          string    `db:"status"`
	HasParticipated bool      `db:"has_participated"`
	Color           string    `db:"color"`
	Icon            string    `db:"icon"`
	EndDate         string    `db:"end_date"`
	CreatedAt       time.Time `db:"created_at"`
}

type questionRow struct {
	ID     string `db:"id"`
	Prompt string `db:"prompt"`
}

type optionRow struct {
	QuestionID string `db:"question_id"`
	Label      string `db:"label"`
	Votes      int    `db:"votes"`
}

type answerRow struct {
	QuestionID string `db:"question_id"`
	Answer     string `db:"answer"`
}

const selectTopics = `
	SELECT id, title, body, kind, participants, comments, status, has_participated,
	       color, icon, end_date, created_at
	FROM topics
`

type topicRepository struct {
	db *sqlx.DB
}

func NewTopicRepository(db *sqlx.DB) ports.TopicRepository {
	return &topicRepository{
		db: db,
	}
}

func (r *topicRepository) GetAll(ctx context.Context) ([]domain.Topic, error) {
	var rows []topicRow
	if err := r.db.SelectContext(ctx, &rows, selectTopics+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to get all topics: %w", err)
	}

	topics := make([]domain.Topic, 0, len(rows))
	for _, row := range rows {
		t, err := r.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		topics = append(topics, *t)
	}
	return topics, nil
}

func (r *topicRepository) GetByID(ctx context.Context, id domain.TopicID) (*domain.Topic, error) {
	var row topicRow
	err := r.db.GetContext(ctx, &row, selectTopics+` WHERE id = $1`, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return r.hydrate(ctx, row)
}

func (r *topicRepository) hydrate(ctx context.Context, row topicRow) (*domain.Topic, error) {
	kind, err := domain.ParseTopicKind(row.Kind)
	if err != nil {
		return nil, fmt.Errorf("topic %d: %w", row.ID, err)
	}

	t := &domain.Topic{
		ID:           domain.TopicID(row.ID),
		Title:        row.Title,
		Body:         row.Body,
		Kind:         kind,
		Participants: row.Participants,
		Comments:     row.Comments,
		Status:       domain.Status(row.Status),
		Participated: row.HasParticipated,
		Color:        row.Color,
		Icon:         row.Icon,
		EndDate:      row.EndDate,
		CreatedAt:    row.CreatedAt,
		Labels:       []string{},
		Questions:    []domain.Question{},
	}

	if err := r.db.SelectContext(ctx, &t.Labels,
		`SELECT label FROM topic_labels WHERE topic_id = $1 ORDER BY position`, row.ID); err != nil {
		return nil, fmt.Errorf("failed to get topic labels: %w", err)
	}

	questions, err := r.fetchQuestions(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	t.Questions = questions

	var answers []answerRow
	if err := r.db.SelectContext(ctx, &answers,
		`SELECT question_id, answer FROM prior_answers WHERE topic_id = $1`, row.ID); err != nil {
		return nil, fmt.Errorf("failed to get prior answers: %w", err)
	}
	t.PriorBallot = domain.Ballot{}
	for _, a := range answers {
		t.PriorBallot[a.QuestionID] = a.Answer
	}

	return t, nil
}

func (r *topicRepository) fetchQuestions(ctx context.Context, topicID int64) ([]domain.Question, error) {
	var qrows []questionRow
	if err := r.db.SelectContext(ctx, &qrows,
		`SELECT id, prompt FROM questions WHERE topic_id = $1 ORDER BY position`, topicID); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	var orows []optionRow
	if err := r.db.SelectContext(ctx, &orows,
		`SELECT question_id, label, votes FROM question_options WHERE topic_id = $1 ORDER BY question_id, position`, topicID); err != nil {
		return nil, fmt.Errorf("failed to get question options: %w", err)
	}

	questions := make([]domain.Question, 0, len(qrows))
	index := make(map[string]int, len(qrows))
	for _, q := range qrows {
		index[q.ID] = len(questions)
		questions = append(questions, domain.Question{ID: q.ID, Prompt: q.Prompt})
	}
	for _, o := range orows {
		i, ok := index[o.QuestionID]
		if !ok {
			continue
		}
		questions[i].Options = append(questions[i].Options, o.Label)
		questions[i].Tallies = append(questions[i].Tallies, o.Votes)
	}
	return questions, nil
}
