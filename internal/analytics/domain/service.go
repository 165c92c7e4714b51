package domain

import "context"

// Question identifies one analytical view. The set is closed; anything
// outside it degrades to an empty result, never an error.
type Question string

const (
	Q1  Question = "Q1"  // revenue by product
	Q2  Question = "Q2"  // revenue by category
	Q3  Question = "Q3"  // revenue by month
	Q4  Question = "Q4"  // average daily revenue per weekday
	Q5  Question = "Q5"  // average revenue per day of month
	Q6  Question = "Q6"  // average revenue per hour
	Q7  Question = "Q7"  // category order probability
	Q8  Question = "Q8"  // category order probability by month
	Q9  Question = "Q9"  // product share within category
	Q10 Question = "Q10" // product share within category by month
	Q11 Question = "Q11" // purchase frequency distribution
	Q12 Question = "Q12" // per-customer total spend
	Q13 Question = "Q13" // customers per segment
	Q14 Question = "Q14" // revenue per segment
	Q15 Question = "Q15" // segment revenue in the peak month
	Q16 Question = "Q16" // average order value per segment
	Q17 Question = "Q17" // month-over-month growth
	Q18 Question = "Q18" // segment × category pivot
	Q19 Question = "Q19" // spend distribution per segment
)

// Service answers one question with a JSON-serializable value. Handlers
// are read-only projections: nothing mutates state and empty data yields
// empty collections rather than errors.
type Service interface {
	Query(ctx context.Context, q Question) (any, error)
}
