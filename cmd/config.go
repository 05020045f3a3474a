package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	AmqpURL               string
	IntakeToken           string
	AcceptDeadlineSeconds string
	OperatorChatIDs       string
	NoticeBufferSize      string
}

// DSN renders the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// AcceptDeadline parses the acceptance window. An empty value falls back to
// the default of 15 seconds.
func (c Config) AcceptDeadline() (time.Duration, error) {
	if c.AcceptDeadlineSeconds == "" {
		return 15 * time.Second, nil
	}
	seconds, err := strconv.Atoi(c.AcceptDeadlineSeconds)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("invalid ACCEPT_DEADLINE_SECONDS value %q", c.AcceptDeadlineSeconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Operators parses the comma separated list of operator chat ids.
func (c Config) Operators() ([]int64, error) {
	if strings.TrimSpace(c.OperatorChatIDs) == "" {
		return nil, nil
	}
	parts := strings.Split(c.OperatorChatIDs, ",")
	chats := make([]int64, 0, len(parts))
	for _, part := range parts {
		chat, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATOR_CHAT_IDS entry %q", part)
		}
		chats = append(chats, chat)
	}
	return chats, nil
}

// NoticeBuffer parses the notification queue capacity. An empty value falls
// back to the default of 256.
func (c Config) NoticeBuffer() (int, error) {
	if c.NoticeBufferSize == "" {
		return 256, nil
	}
	size, err := strconv.Atoi(c.NoticeBufferSize)
	if err != nil || size <= 0 {
		return 0, fmt.Errorf("invalid NOTICE_BUFFER_SIZE value %q", c.NoticeBufferSize)
	}
	return size, nil
}
