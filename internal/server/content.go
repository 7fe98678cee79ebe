package server

// Seed copy rendered on the home, about and contact pages.
const (
	homeStartingContent = "Prioritizing mental health is fundamental to our overall well-being, influencing our thoughts, emotions, and actions. Just as we care for our physical health, nurturing our mental health is crucial for resilience, stress management, and cultivating fulfilling relationships. It's about more than addressing mental illness; it's fostering emotional balance and a supportive environment where seeking help is encouraged. When we champion mental health awareness and provide accessible resources, we not only empower individuals but also fortify communities and workplaces, boosting productivity, creativity, and overall satisfaction. Taking care of mental health is a courageous journey that involves self-care, seeking support, and recognizing its significance in every facet of our lives."

	aboutContent = "Hac habitasse platea dictumst vestibulum rhoncus est pellentesque. Dictumst vestibulum rhoncus est pellentesque elit ullamcorper. Non diam phasellus vestibulum lorem sed. Platea dictumst quisque sagittis purus sit. Egestas sed sed risus pretium quam vulputate dignissim suspendisse. Mauris in aliquam sem fringilla. Semper risus in hendrerit gravida rutrum quisque non tellus orci. Amet massa vitae tortor condimentum lacinia quis vel eros. Enim ut tellus elementum sagittis vitae. Mauris ultrices eros in cursus turpis massa tincidunt dui."

	contactContent = "Scelerisque eleifend donec pretium vulputate sapien. Rhoncus urna neque viverra justo nec ultrices. Arcu dui vivamus arcu felis bibendum. Consectetur adipiscing elit duis tristique. Risus viverra adipiscing at in tellus integer feugiat. Sapien nec sagittis aliquam malesuada bibendum arcu vitae. Consequat interdum varius sit amet mattis. Iaculis nunc sed augue lacus. Interdum posuere lorem ipsum dolor sit amet consectetur adipiscing elit. Pulvinar elementum integer enim neque. Ultrices gravida dictum fusce ut placerat orci nulla. Mauris in aliquam sem fringilla ut morbi tincidunt. Tortor posuere ac ut consequat semper viverra nam libero."
)
