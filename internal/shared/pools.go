package shared

// Fixed pools the generator samples from. Editing these lists is the only
// supported way to change what gets generated.

var Airlines = []string{
	"Air France", "Royal Air Maroc", "Air Arabia", "Emirates",
	"Saudia", "Ryanair", "Qatar Airways", "Lufthansa",
	"TAP Air Portugal", "KLM", "Turkish Airlines", "EasyJet",
}

var SampleTitles = []string{
	"Excellent experience", "Terrible flight", "Smooth journey", "Great service",
	"Awful food", "Lost luggage", "On-time and comfortable", "Never again",
	"Highly recommended", "Mediocre experience", "Delayed and frustrating", "Crew was amazing",
	"Unexpectedly good", "Total disappointment", "Worth every penny", "Terrible customer service",
}

var SampleBodies = []string{
	"The flight was on time and the crew was extremely helpful and friendly.",
	"I had the worst experience ever. The staff was rude and the plane was dirty.",
	"Seats were comfortable and there was plenty of legroom. Great value for the money.",
	"The food served on board was awful. Cold and tasteless.",
	"We departed late but arrived early. Impressive time management.",
	"Customer service was unreachable and offered no help with my issue.",
	"The cabin was clean and the inflight entertainment was decent.",
	"I will never book with this airline again. Completely unprofessional.",
	"Everything went smoothly. Luggage arrived on time and check-in was fast.",
	"Very noisy cabin and poor handling of turbulence.",
	"The flight attendants were polite and always smiling. It made a difference.",
	"They lost my suitcase and it took over a week to get it back.",
	"Boarding process was chaotic and disorganized.",
	"It was a short flight but surprisingly comfortable. Would fly again.",
	"They overbooked the flight and bumped me off. Unacceptable.",
	"Inflight entertainment was outdated and barely worked.",
}
