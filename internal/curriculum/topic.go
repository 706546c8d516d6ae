package curriculum

// TopicGroup is one sub-strand of the Primary 5 syllabus: a primary
// concept name plus the detail topics that fall under it. The pool is
// static, read-only data loaded once at startup; samplers must never
// mutate it.
type TopicGroup struct {
	Concept string
	Details []string
}

// Syllabus returns the full Primary 5 topic pool in display order.
func Syllabus() []TopicGroup {
	return syllabus
}

var syllabus = []TopicGroup{
	{
		Concept: "Whole Numbers",
		Details: []string{
			"Numbers up to 10 million",
			"Reading and writing numbers in numerals and in words",
			"Multiplying and dividing by 10, 100, 1000 and their multiples without calculator",
			"Order of operations without calculator",
			"Use of brackets without calculator",
		},
	},
	{
		Concept: "Fractions",
		Details: []string{
			"Dividing a whole number by a whole number with quotient as a fraction",
			"Expressing fractions as decimals",
			"Adding and subtracting mixed numbers",
			"Multiplying a proper/improper fraction and a whole number without calculator",
			"Multiplying a proper fraction and a proper/improper fraction without calculator",
			"Multiplying two improper fractions",
			"Multiplying a mixed number and a whole number",
		},
	},
	{
		Concept: "Decimals",
		Details: []string{
			"Multiplying and dividing decimals (up to 3 decimal places) by 10, 100, 1000 and their multiples without calculator",
			"Converting a measurement from a smaller unit to a larger unit in decimal form, and vice versa",
			"Kilometres and metres",
			"Metres and centimetres",
			"Kilograms and grams",
			"Litres and millilitres",
		},
	},
	{
		Concept: "Percentage",
		Details: []string{
			"Expressing a part of a whole as a percentage",
			"Use of %",
			"Finding a percentage part of a whole",
			"Finding discount, GST and annual interest",
		},
	},
	{
		Concept: "Rate",
		Details: []string{
			"Rate as the amount of a quantity per unit of another quantity",
			"Finding rate, total amount or number of units given the other two quantities",
		},
	},
	{
		Concept: "Area and Volume",
		Details: []string{
			"Concepts of base and height of a triangle",
			"Area of triangle",
			"Finding the area of composite figures made up of rectangles, squares and triangles",
			"Volume of cube and cuboid",
			"Building solids with unit cubes",
			"Measuring volume in cubic units (cm3/m3), excluding conversion between cm3 and m3",
			"Drawing cubes and cuboids on isometric grid",
			"Finding the volume of liquid in a rectangular tank",
			"Relationship between l (or ml) and cm3",
		},
	},
	{
		Concept: "Geometry",
		Details: []string{
			"Angles on a straight line",
			"Angles at a point",
			"Vertically opposite angles",
			"Finding unknown angles",
			"Properties of isosceles, equilateral and right-angled triangles",
			"Angle sum of a triangle",
			"Properties of parallelogram, rhombus and trapezium",
			"Finding unknown angles without additional construction of lines",
		},
	},
}
