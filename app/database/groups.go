package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

func ListGroups(db *sqlx.DB) ([]models.Group, error) {
	groups := []models.Group{}
	err := db.Select(&groups, `
		SELECT id, name, course, specialization, created_at
		FROM groups
		ORDER BY name`)
	return groups, err
}

func GetGroupByID(db *sqlx.DB, id int64) (*models.Group, error) {
	var group models.Group
	err := db.Get(&group, `
		SELECT id, name, course, specialization, created_at
		FROM groups
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func CreateGroup(db *sqlx.DB, g *models.Group) error {
	return db.QueryRowx(`
		INSERT INTO groups (name, course, specialization)
		VALUES ($1, $2, $3)
		RETURNING id`,
		g.Name, g.Course, g.Specialization,
	).Scan(&g.ID)
}

func UpdateGroup(db *sqlx.DB, g *models.Group) (bool, error) {
	res, err := db.Exec(`
		UPDATE groups
		SET name = $1, course = $2, specialization = $3
		WHERE id = $4`,
		g.Name, g.Course, g.Specialization, g.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func GroupExists(db *sqlx.DB, id int64) (bool, error) {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM groups WHERE id = $1`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}
