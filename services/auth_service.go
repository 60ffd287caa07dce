// Package services, business logic katmanını barındırır.
//
// Service Layer Pattern: Handler (HTTP) ile Repository (DB) arasında oturan
// katman. Tüm iş kuralları burada yaşar — şifre hash'leme, token oluşturma,
// varlık kontrolü.
//
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — Repository interface'i kullanır.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/repository"
)

// AuthService interface'i — dışarıya açık API.
// Handler ve middleware bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error)
	// ValidateAccessToken, imzayı ve expiry'yi doğrular, claims'i döner.
	// Süresi dolmuş ve bozuk token ayrı mesajlarla ama aynı ErrUnauthorized
	// sentinel'i ile reddedilir.
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
	// GenerateToken, kullanıcı kimliğini taşıyan yeni bir imzalı token üretir.
	// Login ve cookie refresh (middleware) tarafından kullanılır.
	GenerateToken(user *models.User) (string, error)
	// GetUser, token claims'indeki user_id'den kullanıcıyı çözer.
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// LoginResult, başarılı login yanıtı: token + kullanıcı.
// Token ayrıca cookie olarak da set edilir (handler'da) — body'deki kopya
// orijinal API kontratının parçasıdır.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// authService, AuthService interface'inin implementasyonu.
//
// jwtSecret process başında bir kez üretilir/yüklenir (bkz. config) ve
// constructor injection ile buraya gelir — ambient global YOK. Process
// ömrü boyunca sabittir; restart dışarıdaki tüm token'ları geçersiz kılar.
type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	accessExp time.Duration
}

// NewAuthService, constructor.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, accessExpMinutes int) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		accessExp: time.Duration(accessExpMinutes) * time.Minute,
	}
}

// Register, yeni kullanıcı kaydı oluşturur.
// Şifre ASLA düz metin saklanmaz — bcrypt hash (cost=12) yazılır.
func (s *authService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	return user, nil
}

// Login, kullanıcı girişi yapar.
//
// Kullanıcı yok ve şifre yanlış durumları aynı mesajla döner —
// username enumeration'a bilgi sızdırmamak için.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: Invalid credentials", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: Invalid credentials", pkg.ErrUnauthorized)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &LoginResult{
		AccessToken: token,
		User:        *user,
	}, nil
}

// ValidateAccessToken, token'ı doğrular ve claims'i döner.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		// Expired ve malformed/invalid ayrımı — ikisi de 401'dir ama
		// mesaj client'a nedenini söyler.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token has expired", pkg.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}

	return claims, nil
}

// GenerateToken, HS256 imzalı access token üretir.
// Expiry mutlaktır: iat + TTL (varsayılan 2 saat).
func (s *authService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "teenspace",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

// GetUser, user_id'den kullanıcıyı çözer.
// Token geçerli ama kullanıcı silinmiş olabilir — caller 401 dönmelidir.
func (s *authService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
