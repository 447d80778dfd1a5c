package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"todolist/internal/models"
)

// Код PostgreSQL для нарушения уникального ограничения (unique_violation).
const pgUniqueViolationCode = "23505"

// UserRepository определяет методы для работы с учетными записями.
// CreateUser обслуживает регистрацию, GetUserByUsername - вход:
// другие операции над учетными записями в системе не предусмотрены.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// postgresUserRepository реализует UserRepository для PostgreSQL.
type postgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository создает новый экземпляр репозитория учетных записей для PostgreSQL.
func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// isUniqueViolation сообщает, вызвана ли ошибка нарушением ограничения
// уникальности (в нашей схеме уникален только username).
func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// CreateUser сохраняет новую учетную запись и возвращает ее ID.
// Пароль к этому моменту уже захеширован сервисным слоем.
// Занятость имени определяет сама вставка, предварительной проверки нет.
func (r *postgresUserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	query := `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`
	var userID int64

	err := r.db.QueryRowxContext(ctx, query, user.Username, user.PasswordHash).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Printf("[UserRepo] Регистрация отклонена: имя '%s' уже занято", user.Username)
			return 0, ErrUsernameTaken
		}
		log.Printf("[UserRepo] Ошибка вставки учетной записи '%s': %v", user.Username, err)
		return 0, fmt.Errorf("ошибка вставки учетной записи: %w", err)
	}

	log.Printf("[UserRepo] Зарегистрирована учетная запись '%s' (ID: %d)", user.Username, userID)
	return userID, nil
}

// GetUserByUsername читает учетную запись по имени для проверки пароля при входе.
// Возвращает ErrUserNotFound, если такого имени нет; сравнение хеша пароля
// остается за сервисным слоем.
func (r *postgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = $1`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[UserRepo] Учетная запись '%s' не найдена", username)
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepo] Ошибка чтения учетной записи '%s': %v", username, err)
		return nil, fmt.Errorf("ошибка чтения учетной записи: %w", err)
	}

	log.Printf("[UserRepo] Прочитана учетная запись '%s' (ID: %d)", username, user.ID)
	return &user, nil
}

// Кастомные ошибки репозитория.
var (
	ErrUserNotFound  = errors.New("пользователь не найден")
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
)
