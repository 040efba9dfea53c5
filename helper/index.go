package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"waitify/config"
	"waitify/database"
	"waitify/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

// RedisClient is nil until InitRedis runs; publishers must tolerate that.
var RedisClient *redis.Client

func InitRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GetProfileByEmail(email string) (*model.Profile, error) {
	var profile model.Profile
	if err := database.DB.Where(&model.Profile{Email: email}).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["profileId"] = tokenClaim.ProfileId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["profileId"] = tokenClaim.ProfileId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
}

// GetInfoProfileFromToken loads the authenticated profile and its role flags.
func GetInfoProfileFromToken(c *fiber.Ctx) (model.TokenClaim, *model.Profile, bool, bool) {
	u := c.Locals("user")
	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil, false, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil, false, false
	}

	profileIdFloat, ok := claims["profileId"].(float64)
	if !ok || profileIdFloat == 0 {
		return model.TokenClaim{}, nil, false, false
	}
	email, _ := claims["email"].(string)

	tokenClaim := model.TokenClaim{
		ProfileId: uint(profileIdFloat),
		Email:     email,
	}

	var profile model.Profile
	if err := database.DB.Preload("Business").First(&profile, tokenClaim.ProfileId).Error; err != nil {
		log.Printf("profile lookup failed: id=%d err=%v", tokenClaim.ProfileId, err)
		return tokenClaim, nil, false, false
	}

	return tokenClaim, &profile, profile.Role == "admin", profile.Role == "business"
}

// RequireBusiness resolves the caller's business or answers 403 itself.
func RequireBusiness(c *fiber.Ctx) (*model.Profile, *model.Business, error) {
	_, profile, isAdmin, isBusiness := GetInfoProfileFromToken(c)
	if profile == nil || (!isBusiness && !isAdmin) {
		return nil, nil, errors.New("business account required")
	}
	if profile.BusinessId == nil {
		return nil, nil, errors.New("no business attached to account")
	}

	var business model.Business
	if err := database.DB.First(&business, *profile.BusinessId).Error; err != nil {
		return nil, nil, err
	}
	return profile, &business, nil
}

// GetGuestOrUser extracts an optional authenticated user id on guest routes.
func GetGuestOrUser(c *fiber.Ctx) *uint {
	_, profile, _, _ := GetInfoProfileFromToken(c)
	if profile == nil {
		return nil
	}
	id := profile.ID
	return &id
}
