package models

// User struct matches the document in MongoDB
type User struct {
	Email    string `bson:"email"`
	Name     string `bson:"name"`
	Password string `bson:"password"`
	Role     string `bson:"role"` // superadmin, farmer, certifier, distributor
	ActorID  string `bson:"actorID"`
	Status   string `bson:"status"`
}
