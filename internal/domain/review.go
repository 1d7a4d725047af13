package domain

type Review struct {
	ID        int64  `db:"id"`
	Version   int    `db:"version"`
	ProductID int    `db:"product_id"`
	ReviewID  int    `db:"review_id"`
	Author    string `db:"author"`
	Subject   string `db:"subject"`
	Content   string `db:"content"`
}
