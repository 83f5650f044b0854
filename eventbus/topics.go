package eventbus

// Topics 는 이 서비스가 발행하는 토픽 묶음이다.
type Topics struct {
	Users    Topic
	Comments Topic
}

// NewTopics 는 prefix 를 붙인 토픽 이름을 만든다 (예: blog-platform.users).
func NewTopics(prefix string) Topics {
	if prefix == "" {
		prefix = "blog-platform"
	}
	return Topics{
		Users:    NewTopic(prefix + ".users"),
		Comments: NewTopic(prefix + ".comments"),
	}
}

func (t Topics) All() []Topic {
	return []Topic{t.Users, t.Comments}
}
