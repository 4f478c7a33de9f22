package utils

import (
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateBookingSessionJWT issues the HS256 token that scopes draft
// operations to the booking session that created the draft.
func GenerateBookingSessionJWT(bookingID, secret string, jwtExpiryTimeInHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"booking_id": bookingID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTimeInHours) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

// ParseBookingSessionJWT returns the booking ID carried by a session token.
func ParseBookingSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	bookingID, ok := claims["booking_id"].(string)
	if !ok || bookingID == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return bookingID, nil
}
